package market

import "fmt"

// Kind classifies a rejected transition. The presentation layer switches on
// the kind to render a specific message instead of a generic failure.
type Kind string

const (
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindValidationFailed   Kind = "VALIDATION_FAILED"
	KindIneligibleState    Kind = "INELIGIBLE_STATE"
	KindInsufficientStock  Kind = "INSUFFICIENT_STOCK"
	KindNotFound           Kind = "NOT_FOUND"
)

// Error carries the kind plus enough structure (entity, id, field) for a
// caller to point at the offending input. It satisfies errors.Is against the
// kind sentinels below.
type Error struct {
	Kind   Kind
	Entity string
	ID     string
	Field  string
	Reason string
}

func (e *Error) Error() string {
	msg := "market: " + string(e.Kind)
	if e.Entity != "" {
		msg += " " + e.Entity
		if e.ID != "" {
			msg += " " + e.ID
		}
	}
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is matches any *Error of the same kind, so
// errors.Is(err, market.ErrNotFound) works regardless of the detail fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Kind sentinels for errors.Is checks.
var (
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrValidationFailed   = &Error{Kind: KindValidationFailed}
	ErrIneligibleState    = &Error{Kind: KindIneligibleState}
	ErrInsufficientStock  = &Error{Kind: KindInsufficientStock}
	ErrNotFound           = &Error{Kind: KindNotFound}
)

func notFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

func invalidField(entity, field, reason string) *Error {
	return &Error{Kind: KindValidationFailed, Entity: entity, Field: field, Reason: reason}
}

func ineligible(entity, id string, status Status) *Error {
	return &Error{
		Kind:   KindIneligibleState,
		Entity: entity,
		ID:     id,
		Reason: fmt.Sprintf("status %s forbids this transition", status),
	}
}
