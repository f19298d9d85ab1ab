package manager

import (
	"errors"
	"strings"

	"carniceria-admin/services/admin-console/internal/models"
)

var (
	// ErrEmptyField: the description is empty or whitespace only.
	ErrEmptyField = errors.New("empty description")
	// ErrDuplicateEntry: the description already exists in the loaded list.
	ErrDuplicateEntry = errors.New("duplicate description")
	// ErrWriteFailure wraps any transport or server error on create.
	ErrWriteFailure = errors.New("create payment type failed")
	// ErrLoadFailure wraps any transport or server error on fetch.
	ErrLoadFailure = errors.New("load payment types failed")

	ErrModalClosed      = errors.New("add form is not open")
	ErrSubmitInProgress = errors.New("a submission is already in progress")
)

// Validate checks a new description against the loaded list. Duplicates are
// exact, case-sensitive matches; the server's copy is never consulted.
func Validate(description string, existing []models.PaymentType) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyField
	}
	for _, pt := range existing {
		if pt.Description == description {
			return ErrDuplicateEntry
		}
	}
	return nil
}

// Message returns the user-facing text for an error produced by this package,
// or "" if the error is not one of ours.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyField):
		return MsgEmptyField
	case errors.Is(err, ErrDuplicateEntry):
		return MsgDuplicate
	case errors.Is(err, ErrWriteFailure):
		return MsgCreateFailed
	case errors.Is(err, ErrLoadFailure):
		return MsgLoadFailed
	case errors.Is(err, ErrModalClosed):
		return MsgModalClosed
	case errors.Is(err, ErrSubmitInProgress):
		return MsgSubmitPending
	default:
		return ""
	}
}
