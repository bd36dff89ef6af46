package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError is raised by the persistence layer when a record does
// not exist. Callers match it with errors.As instead of inspecting
// message text.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// wrapNotFound converts gorm's record-not-found sentinel into a typed
// NotFoundError carrying the entity and id.
func wrapNotFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError{Entity: entity, ID: id}
	}
	return err
}
