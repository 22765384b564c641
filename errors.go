package Go_DS

import "github.com/cockroachdb/errors"

// Errors returned by the containers. Operations may wrap them with extra
// context, so compare using errors.Is.
var (
	ErrNullInput    = errors.New("required handle or input is absent")
	ErrEmpty        = errors.New("structure is empty")
	ErrNotFound     = errors.New("key not found")
	ErrInvalidInput = errors.New("operation requires keys that do not exist")
	ErrPopFromEmpty = errors.New("cannot remove from an empty structure")
	ErrAllocFailed  = errors.New("cannot allocate another node")
	ErrNullAction   = errors.New("no action given")
	ErrFreeNull     = errors.New("free of null handle")
)
