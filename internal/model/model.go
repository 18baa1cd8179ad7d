package model

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrEmptyRoomName    = errors.New("room name required")
	ErrUnknownReference = errors.New("referenced doctor, patient or room does not exist")
)

type Doctor struct {
	ID        int64
	FirstName *string
	LastName  *string
	Age       int
	Email     *string
}

type Patient struct {
	ID        int64
	FirstName *string
	LastName  *string
	Age       int
	Email     *string
}

// Room is keyed by its name.
type Room struct {
	Name string
}

func (r Room) Validate() error {
	if r.Name == "" {
		return ErrEmptyRoomName
	}
	return nil
}

// Ptr is a shorthand for building optional fields.
func Ptr[T any](v T) *T { return &v }
