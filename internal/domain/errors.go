package domain

import "fmt"

// ValidationError reports bad input: non-positive amount, malformed date,
// missing required field, or an unknown user on deal creation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown entity id referenced as a required
// dependency.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func NotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IllegalTransitionError reports an attempt to move a deal out of a terminal
// workflow state.
type IllegalTransitionError struct {
	From DealStatus
	To   DealStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %s to %s", e.From, e.To)
}
