package store

import (
	"errors"
	"fmt"
)

// ErrStorage marks every failure of the underlying store (disk, permissions,
// corrupt records). Callers report it generically and do not retry.
var ErrStorage = errors.New("store: storage fault")

// FaultError carries the failed operation and key. It matches both
// ErrStorage and the cause under errors.Is.
type FaultError struct {
	Op  string
	Key string
	Err error
}

func (e *FaultError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *FaultError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

func fault(op, key string, err error) error {
	return &FaultError{Op: op, Key: key, Err: err}
}
