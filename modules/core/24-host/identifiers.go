// Package host implements ICS-24: identifier and path validation, and the
// path constructors that render the exact strings counterparties verify
// membership proofs against. Every function here is pure and deterministic;
// nothing touches the store.
package host

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// defaultAllowedCharset matches ICS-24's identifier alphabet:
// [a-zA-Z0-9._+\-#\[\]<>]
var defaultAllowedCharset = regexp.MustCompile(`^[a-zA-Z0-9._+\-#\[\]<>]+$`)

const (
	// KeySegmentSeparator is used for stitching path segments together.
	KeySegmentSeparator = "/"

	defaultMinLength = 1
	defaultMaxLength = 64
)

// ValidateIdentifierChars checks id is non-empty and composed only of the
// ICS-24 allowed charset.
func ValidateIdentifierChars(id string) error {
	if strings.TrimSpace(id) == "" {
		return errorsmod.Wrap(ErrInvalidID, "identifier cannot be blank")
	}
	if !defaultAllowedCharset.MatchString(id) {
		return errorsmod.Wrapf(ErrInvalidID, "identifier %s must contain only alphanumeric or the following characters: '.', '_', '+', '-', '#', '[', ']', '<', '>'", id)
	}
	return nil
}

// ValidateIdentifierLength checks id's length is within [min, max], inclusive.
func ValidateIdentifierLength(id string, min, max uint) error {
	length := uint(len(id))
	if length < min || length > max {
		return errorsmod.Wrapf(ErrInvalidID, "identifier %s has invalid length: got %d, expected between %d-%d characters", id, length, min, max)
	}
	return nil
}

// validateIdentifier is the common shape: charset then length.
func validateIdentifier(id string, min, max uint) error {
	if err := ValidateIdentifierChars(id); err != nil {
		return err
	}
	return ValidateIdentifierLength(id, min, max)
}

// ValidatePortID validates a PortId: a free-form identifier of 2..=128 characters.
func ValidatePortID(portID string) error {
	return validateIdentifier(portID, 2, 128)
}

// ValidateClientID validates a ClientId of the form "{type}-{seq}", e.g. "07-tendermint-0".
// ICS-24 does not mandate the hyphenated-sequence shape for client IDs beyond charset/length;
// this engine enforces it because it is the only shape Create/UpdateClient ever produce, so a
// client ID failing the shape check can never have been minted by this engine.
func ValidateClientID(clientID string) error {
	if err := validateIdentifier(clientID, defaultMinLength, defaultMaxLength); err != nil {
		return err
	}
	if _, _, err := parseIdentifier(clientID); err != nil {
		return errorsmod.Wrapf(ErrInvalidID, "client identifier %s is not of the form {type}-{sequence}: %s", clientID, err)
	}
	return nil
}

// ValidateConnectionID validates a ConnectionId of the form "connection-{seq}".
func ValidateConnectionID(connectionID string) error {
	return validatePrefixedSequenceID(connectionID, ConnectionPrefix)
}

// ValidateChannelID validates a ChannelId of the form "channel-{seq}".
func ValidateChannelID(channelID string) error {
	return validatePrefixedSequenceID(channelID, ChannelPrefix)
}

func validatePrefixedSequenceID(id, prefix string) error {
	if err := validateIdentifier(id, uint(len(prefix))+2, 64); err != nil {
		return err
	}
	splitPrefix, seq, err := parseIdentifier(id)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidID, "identifier %s is not of the form %s-{sequence}: %s", id, prefix, err)
	}
	if splitPrefix != prefix {
		return errorsmod.Wrapf(ErrInvalidID, "identifier %s does not have prefix %s", id, prefix)
	}
	return nil
}

// parseIdentifier splits "{prefix}-{sequence}" on the final hyphen, requiring
// the suffix to parse as a non-negative base-10 integer.
func parseIdentifier(id string) (prefix string, sequence uint64, err error) {
	idx := strings.LastIndex(id, "-")
	if idx < 0 || idx == len(id)-1 {
		return "", 0, fmt.Errorf("identifier %s is not in the format {prefix}-{sequence}", id)
	}
	prefix = id[:idx]
	seqStr := id[idx+1:]
	sequence, err = strconv.ParseUint(seqStr, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("sequence %s is not a non-negative integer", seqStr)
	}
	return prefix, sequence, nil
}

// ClientTypeFromID extracts the client type prefix from a client ID, e.g.
// "07-tendermint" from "07-tendermint-0". Callers use it to route decoding of
// a client's stored state to the right light client package.
func ClientTypeFromID(clientID string) (string, error) {
	prefix, _, err := parseIdentifier(clientID)
	if err != nil {
		return "", errorsmod.Wrapf(ErrInvalidID, "client identifier %s is not of the form {type}-{sequence}: %s", clientID, err)
	}
	return prefix, nil
}

// FormatClientIdentifier renders "{clientType}-{sequence}".
func FormatClientIdentifier(clientType string, sequence uint64) string {
	return fmt.Sprintf("%s-%d", clientType, sequence)
}

// FormatConnectionIdentifier renders "connection-{sequence}".
func FormatConnectionIdentifier(sequence uint64) string {
	return fmt.Sprintf("%s-%d", ConnectionPrefix, sequence)
}

// FormatChannelIdentifier renders "channel-{sequence}".
func FormatChannelIdentifier(sequence uint64) string {
	return fmt.Sprintf("%s-%d", ChannelPrefix, sequence)
}

const (
	ConnectionPrefix = "connection"
	ChannelPrefix    = "channel"
)
