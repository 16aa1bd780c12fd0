package types

// Acknowledgement is the application-level response a module's on_recv_packet
// callback produces: either a success result or an error string. An empty Acknowledgement (neither set) signals an async ack: the
// module will write it later out of band, and RecvPacket does not commit an
// ack hash in that case.
type Acknowledgement struct {
	Success bool
	Result  []byte
	Error   string
}

// IsEmpty reports whether this acknowledgement should be treated as "not
// ready yet" rather than as an explicit success or failure.
func (a Acknowledgement) IsEmpty() bool {
	return !a.Success && len(a.Result) == 0 && a.Error == ""
}

// Acknowledgement wire layout: a one-byte discriminant followed by the
// payload, so CommitAcknowledgement hashes a stable encoding regardless of
// which variant is set.
func (a Acknowledgement) Marshal() ([]byte, error) {
	if a.Success {
		return append([]byte{1}, a.Result...), nil
	}
	return append([]byte{0}, []byte(a.Error)...), nil
}

// NewResultAcknowledgement builds a successful acknowledgement carrying result.
func NewResultAcknowledgement(result []byte) Acknowledgement {
	return Acknowledgement{Success: true, Result: result}
}

// NewErrorAcknowledgement builds a failed acknowledgement carrying err's message.
func NewErrorAcknowledgement(err error) Acknowledgement {
	return Acknowledgement{Success: false, Error: err.Error()}
}
