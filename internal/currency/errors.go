package currency

import "errors"

// Kind classifies a failed conversion.
type Kind string

const (
	KindValidation Kind = "validation"
	KindTransport  Kind = "transport"
	KindBusiness   Kind = "business"
	KindUnexpected Kind = "unexpected"
)

const (
	msgInvalidAmount = "Please enter a valid amount"
	msgFetchFailed   = "Failed to fetch exchange rate"
	msgConversion    = "Conversion failed"
	msgUnexpected    = "An error occurred"
)

// Error is a conversion failure with the message shown to the user.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the text to show for err.
func Message(err error) string {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Message
	}
	if err == nil || err.Error() == "" {
		return msgUnexpected
	}
	return err.Error()
}

// KindOf returns the kind of err, or KindUnexpected for foreign errors.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return KindUnexpected
}

func unexpected(err error) *Error {
	msg := msgUnexpected
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Kind: KindUnexpected, Message: msg, Err: err}
}
