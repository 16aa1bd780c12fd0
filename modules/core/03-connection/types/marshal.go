package types

import "encoding/json"

// wireConnectionEnd is the on-the-wire shape used both for storage and as
// the expected-value bytes a counterparty proof is checked against. Kept as
// a plain JSON envelope, matching the mock light client's own Marshal
// convention (modules/light-clients/mock/mock.go) since spec §6 places wire
// encoding itself out of scope.
type wireConnectionEnd struct {
	ClientId     string
	Versions     []Version
	State        State
	Counterparty wireCounterparty
	DelayPeriod  uint64
}

type wireCounterparty struct {
	ClientId     string
	ConnectionId string
	Prefix       []byte
}

// MarshalConnectionEnd encodes a ConnectionEnd for storage and for building
// the expected-value bytes a handshake proof is checked against.
func MarshalConnectionEnd(conn ConnectionEnd) ([]byte, error) {
	var prefix []byte
	if conn.Counterparty.Prefix != nil {
		prefix = conn.Counterparty.Prefix.Bytes()
	}
	return json.Marshal(wireConnectionEnd{
		ClientId: conn.ClientId,
		Versions: conn.Versions,
		State:    conn.State,
		Counterparty: wireCounterparty{
			ClientId:     conn.Counterparty.ClientId,
			ConnectionId: conn.Counterparty.ConnectionId,
			Prefix:       prefix,
		},
		DelayPeriod: conn.DelayPeriod,
	})
}

// UnmarshalConnectionEnd decodes a ConnectionEnd previously written by
// MarshalConnectionEnd.
func UnmarshalConnectionEnd(bz []byte) (ConnectionEnd, error) {
	var w wireConnectionEnd
	if err := json.Unmarshal(bz, &w); err != nil {
		return ConnectionEnd{}, err
	}
	return ConnectionEnd{
		ClientId: w.ClientId,
		Versions: w.Versions,
		State:    w.State,
		Counterparty: Counterparty{
			ClientId:     w.Counterparty.ClientId,
			ConnectionId: w.Counterparty.ConnectionId,
			Prefix:       NewMerklePrefix(w.Counterparty.Prefix),
		},
		DelayPeriod: w.DelayPeriod,
	}, nil
}
