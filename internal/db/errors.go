package db

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned when a requested key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// Op identifies the store operation that produced an error.
type Op string

const (
	OpPing    Op = "ping"
	OpHSet    Op = "hset"
	OpHGetAll Op = "hgetall"
	OpDel     Op = "del"
	OpExists  Op = "exists"
	OpScan    Op = "scan"
)

// Error wraps a backend failure with the operation that caused it.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("db %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an operation error.
func NewError(op Op, err error) *Error {
	return &Error{Op: op, Err: err}
}
