package ejudge

import "fmt"

// ValidationError reports a request that violates one of the structural
// invariants (mutual exclusion, presence, range). It is returned before
// any network activity and is never worth retrying.
type ValidationError struct {
	Constraint string
}

func (e *ValidationError) Error() string {
	return "ejudge: invalid request: " + e.Constraint
}

func errValidation(constraint string) *ValidationError {
	return &ValidationError{Constraint: constraint}
}

// ClientError reports a transport-level failure of one call: an
// unexpected HTTP status, a network or protocol error, a non-JSON body,
// or a reply that does not match the expected shape. The client never
// retries; retry policy belongs to the caller.
type ClientError struct {
	Action string
	Status int // non-zero when an unexpected HTTP status caused the failure
	Reason string
	Err    error // underlying cause, if any
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ejudge: %s: %s: %v", e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("ejudge: %s: %s", e.Action, e.Reason)
}

func (e *ClientError) Unwrap() error { return e.Err }

// ReplyError reports a reply that was delivered fine at the HTTP level
// but carries ok:false. The full envelope is kept for upstream
// inspection; its error block is synthesized ({-1, "unknown"}) when the
// server omitted one.
type ReplyError struct {
	Action string
	Reply  Envelope
}

func (e *ReplyError) Error() string {
	errb := e.Reply.Error
	msg := "no message"
	if errb.Message != nil && *errb.Message != "" {
		msg = *errb.Message
	}
	return fmt.Sprintf("ejudge: %s: remote reported error %s (%d): %s", e.Action, errb.Symbol, errb.Num, msg)
}

// Unwrap lets errors.As match a ReplyError as the broader *ClientError.
func (e *ReplyError) Unwrap() error {
	return &ClientError{Action: e.Action, Reason: "remote reported failure"}
}
