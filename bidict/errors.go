package bidict

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("bidict: not found")
	// ErrDuplication matches every *DuplicationError.
	ErrDuplication = errors.New("bidict: duplication")
	// ErrImmutable is returned by every write on a frozen map.
	ErrImmutable = errors.New("bidict: map is frozen")
	// ErrModified reports that the map changed under an in-progress iteration.
	ErrModified = errors.New("bidict: map modified during iteration")
	// ErrLengthMismatch is returned when keys and values differ in length.
	ErrLengthMismatch = errors.New("bidict: keys and values differ in length")
)

// DupKind classifies a rejected insertion.
type DupKind uint8

const (
	// DupKey: the key is already mapped to another value.
	DupKey DupKind = iota + 1
	// DupValue: the value is already mapped from another key.
	DupValue
	// DupKeyAndValue: key and value each belong to a different existing item.
	DupKeyAndValue
)

func (k DupKind) String() string {
	switch k {
	case DupKey:
		return "key"
	case DupValue:
		return "value"
	case DupKeyAndValue:
		return "key_and_value"
	default:
		return fmt.Sprintf("DupKind(%d)", uint8(k))
	}
}

// swap exchanges the key and value roles.
func (k DupKind) swap() DupKind {
	switch k {
	case DupKey:
		return DupValue
	case DupValue:
		return DupKey
	default:
		return k
	}
}

// DuplicationError is returned when an insertion collides with existing
// items under a Raise policy. The map is unchanged.
type DuplicationError struct {
	Kind  DupKind
	Key   any
	Value any
}

func (e *DuplicationError) Error() string {
	switch e.Kind {
	case DupKey:
		return fmt.Sprintf("bidict: key %v is already mapped", e.Key)
	case DupValue:
		return fmt.Sprintf("bidict: value %v is already mapped", e.Value)
	default:
		return fmt.Sprintf("bidict: key %v and value %v belong to different items", e.Key, e.Value)
	}
}

// Is makes errors.Is(err, ErrDuplication) hold.
func (e *DuplicationError) Is(target error) bool { return target == ErrDuplication }

// NotFoundError is returned by lookups and removals of absent keys or values.
// Inverse is set when the missing element was looked up as a value.
type NotFoundError struct {
	Key     any
	Inverse bool
}

func (e *NotFoundError) Error() string {
	if e.Inverse {
		return fmt.Sprintf("bidict: value %v not found", e.Key)
	}
	return fmt.Sprintf("bidict: key %v not found", e.Key)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// swapErr rewrites an error produced by the underlying map so that it reads
// in the orientation of an inverse view.
func swapErr(err error) error {
	var de *DuplicationError
	if errors.As(err, &de) {
		return &DuplicationError{Kind: de.Kind.swap(), Key: de.Value, Value: de.Key}
	}
	return err
}
