package store

// Kind classifies an operation failure so transport layers can map it to a
// status code without parsing the message.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
)

// Error is the failure type returned by every store operation. The message
// is a short human-readable reason safe to show to the user directly.
type Error struct {
	kind    Kind
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Kind() Kind { return e.kind }

func validationError(msg string) *Error { return &Error{kind: KindValidation, message: msg} }
func conflictError(msg string) *Error   { return &Error{kind: KindConflict, message: msg} }
func authError(msg string) *Error       { return &Error{kind: KindAuth, message: msg} }
func notFoundError(msg string) *Error   { return &Error{kind: KindNotFound, message: msg} }

// KindOf returns the failure kind of err, or KindUnknown if err was not
// produced by the store.
func KindOf(err error) Kind {
	if se, ok := err.(*Error); ok {
		return se.kind
	}
	return KindUnknown
}
