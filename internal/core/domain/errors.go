package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPollExists     = errors.New("poll with that id already exists")
	ErrPollNotFound   = errors.New("poll not found")
	ErrNotOwner       = errors.New("not an owner of this poll")
	ErrMalformedToken = errors.New("malformed vote token")
)

// ValidationError reports a missing or unusable command argument. It is
// always recovered and rendered as a reply to the invoking user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
