package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// PersistenceError is returned when the store rejects a read or a write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsConstraintViolation reports whether err was caused by a foreign key,
// unique or check constraint of the store.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	// Drivers without an error translator only expose the message.
	msg := strings.ToLower(err.Error())
	for _, needle := range []string{"foreign key", "unique constraint", "check constraint", "duplicate key"} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
