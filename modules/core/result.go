package core

// handlerResult is what every Dispatch call returns on success: whatever
// identifier or resolved value its handshake step produced, if any. Grounded
// on the original implementation's HandlerOutput (ics02_client/context.rs,
// conn_open_confirm.rs): a handler runs its validate step to completion
// before its execute (commit) step, so a validate failure never reaches the
// execute step and the message has no partial effect (spec's invariant 5,
// "all-or-nothing handlers").
type handlerResult struct {
	// ID is the client, connection, or channel id the message concerns: the
	// one a create or handshake Init/Try step allocated, or the existing id
	// for client update/upgrade/misbehaviour and handshake Ack/Confirm/Close
	// steps. It is empty for packet steps.
	ID string
	// Ack is the application-produced acknowledgement, set only by
	// HandleMsgRecvPacket.
	Ack []byte
}
