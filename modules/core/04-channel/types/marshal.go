package types

import "encoding/json"

// MarshalChannelEnd encodes a ChannelEnd for storage and for building the
// expected-value bytes a handshake proof is checked against, matching the
// connection subsystem's MarshalConnectionEnd convention.
func MarshalChannelEnd(channel ChannelEnd) ([]byte, error) {
	return json.Marshal(channel)
}

// UnmarshalChannelEnd decodes a ChannelEnd previously written by
// MarshalChannelEnd.
func UnmarshalChannelEnd(bz []byte) (ChannelEnd, error) {
	var channel ChannelEnd
	if err := json.Unmarshal(bz, &channel); err != nil {
		return ChannelEnd{}, err
	}
	return channel, nil
}
