package host

import (
	"fmt"
	"strconv"
	"strings"
)

// Path constructors. Bit-exact: counterparties verify membership proofs
// against these strings, so layout changes here are wire-breaking.

const (
	KeyClientStorePrefix = "clients"

	keyClientState      = "clientState"
	keyConsensusStates  = "consensusStates"
	keyConnections      = "connections"
	keyChannelEnds      = "channelEnds"
	keyPorts            = "ports"
	keyChannels         = "channels"
	keySequences        = "sequences"
	keyNextSeqSend      = "nextSequenceSend"
	keyNextSeqRecv      = "nextSequenceRecv"
	keyNextSeqAck       = "nextSequenceAck"
	keyCommitments      = "commitments"
	keyReceipts         = "receipts"
	keyAcks             = "acks"
	keyNextClientSeq    = "nextClientSequence"
	keyNextConnSeq      = "nextConnectionSequence"
	keyNextChanSeq      = "nextChannelSequence"
)

// FullClientStatePath returns "clients/{clientID}/clientState".
func FullClientStatePath(clientID string) string {
	return fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, keyClientState)
}

// FullConsensusStatePath returns "clients/{clientID}/consensusStates/{revision}-{height}".
func FullConsensusStatePath(clientID string, revisionNumber, revisionHeight uint64) string {
	return fmt.Sprintf("%s/%s", FullClientStatePrefix(clientID), ConsensusStatePath(revisionNumber, revisionHeight))
}

// FullClientStatePrefix returns "clients/{clientID}".
func FullClientStatePrefix(clientID string) string {
	return fmt.Sprintf("%s/%s", KeyClientStorePrefix, clientID)
}

// ConsensusStatePath returns "consensusStates/{revision}-{height}", relative
// to a client's own store prefix.
func ConsensusStatePath(revisionNumber, revisionHeight uint64) string {
	return fmt.Sprintf("%s/%d-%d", keyConsensusStates, revisionNumber, revisionHeight)
}

// ClientConnectionsPath returns "clients/{clientID}/connections", the index of
// connections built on top of a given client.
func ClientConnectionsPath(clientID string) string {
	return fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, keyConnections)
}

// ConnectionPath returns "connections/{connectionID}".
func ConnectionPath(connectionID string) string {
	return fmt.Sprintf("%s/%s", keyConnections, connectionID)
}

// ChannelPath returns "channelEnds/ports/{portID}/channels/{channelID}".
func ChannelPath(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", keyChannelEnds, channelPathSuffix(portID, channelID))
}

func channelPathSuffix(portID, channelID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", keyPorts, portID, keyChannels, channelID)
}

// NextSequenceSendPath returns "nextSequenceSend/ports/{portID}/channels/{channelID}".
func NextSequenceSendPath(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", keyNextSeqSend, channelPathSuffix(portID, channelID))
}

// NextSequenceRecvPath returns "nextSequenceRecv/ports/{portID}/channels/{channelID}".
func NextSequenceRecvPath(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", keyNextSeqRecv, channelPathSuffix(portID, channelID))
}

// NextSequenceAckPath returns "nextSequenceAck/ports/{portID}/channels/{channelID}".
func NextSequenceAckPath(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", keyNextSeqAck, channelPathSuffix(portID, channelID))
}

// PacketCommitmentPath returns "commitments/ports/{p}/channels/{c}/sequences/{seq}".
func PacketCommitmentPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%s/%s/%d", keyCommitments, channelPathSuffix(portID, channelID), keySequences, sequence)
}

// PacketReceiptPath returns "receipts/ports/{p}/channels/{c}/sequences/{seq}".
func PacketReceiptPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%s/%s/%d", keyReceipts, channelPathSuffix(portID, channelID), keySequences, sequence)
}

// PacketAcknowledgementPath returns "acks/ports/{p}/channels/{c}/sequences/{seq}".
func PacketAcknowledgementPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("%s/%s/%s/%d", keyAcks, channelPathSuffix(portID, channelID), keySequences, sequence)
}

// NextClientSequencePath returns "nextClientSequence".
func NextClientSequencePath() string { return keyNextClientSeq }

// NextConnectionSequencePath returns "nextConnectionSequence".
func NextConnectionSequencePath() string { return keyNextConnSeq }

// NextChannelSequencePath returns "nextChannelSequence".
func NextChannelSequencePath() string { return keyNextChanSeq }

// ChannelCommitmentsPrefix returns the path prefix under which all packet
// commitments for a channel live, used for prefix enumeration by queries.
func ChannelCommitmentsPrefix(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", keyCommitments, channelPathSuffix(portID, channelID))
}

// ChannelReceiptsPrefix returns the path prefix under which all packet
// receipts for a channel live.
func ChannelReceiptsPrefix(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", keyReceipts, channelPathSuffix(portID, channelID))
}

// ChannelAcksPrefix returns the path prefix under which all acknowledgements
// for a channel live.
func ChannelAcksPrefix(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", keyAcks, channelPathSuffix(portID, channelID))
}

// ConnectionsPrefix returns "connections", the prefix under which every
// ConnectionEnd lives, for list-connections queries.
func ConnectionsPrefix() string { return keyConnections }

// ChannelEndsPrefix returns "channelEnds", the prefix under which every
// ChannelEnd lives, for list-channels queries.
func ChannelEndsPrefix() string { return keyChannelEnds }

// SplitClientStatePath parses "clients/{clientID}/clientState" back into
// clientID, reporting ok=false for any other path under the clients prefix
// (e.g. a consensus state or the client-connection index).
func SplitClientStatePath(path string) (clientID string, ok bool) {
	parts := strings.Split(path, "/")
	if len(parts) != 3 || parts[0] != KeyClientStorePrefix || parts[2] != keyClientState {
		return "", false
	}
	return parts[1], true
}

// SplitConsensusStatePath parses
// "clients/{clientID}/consensusStates/{revision}-{height}" back into its
// components.
func SplitConsensusStatePath(path string) (clientID string, revisionNumber, revisionHeight uint64, ok bool) {
	parts := strings.Split(path, "/")
	if len(parts) != 4 || parts[0] != KeyClientStorePrefix || parts[2] != keyConsensusStates {
		return "", 0, 0, false
	}
	revPart := strings.SplitN(parts[3], "-", 2)
	if len(revPart) != 2 {
		return "", 0, 0, false
	}
	rev, err := strconv.ParseUint(revPart[0], 10, 64)
	if err != nil {
		return "", 0, 0, false
	}
	height, err := strconv.ParseUint(revPart[1], 10, 64)
	if err != nil {
		return "", 0, 0, false
	}
	return parts[1], rev, height, true
}

// SplitChannelPath parses "channelEnds/ports/{portID}/channels/{channelID}"
// back into its components.
func SplitChannelPath(path string) (portID, channelID string, ok bool) {
	parts := strings.Split(path, "/")
	if len(parts) != 5 || parts[0] != keyChannelEnds || parts[1] != keyPorts || parts[3] != keyChannels {
		return "", "", false
	}
	return parts[2], parts[4], true
}
