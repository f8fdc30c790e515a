package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/creami/internal/common"
	"github.com/dmitrijs2005/creami/internal/logging"
)

// StorageError reports a rejected write. It matches both
// common.ErrStorageWrite and the underlying cause with errors.Is.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{common.ErrStorageWrite, e.Err}
}

// failClosed is the write policy: wrap and surface.
func failClosed(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Key: key, Err: err}
}

// failOpen is the read policy: log and fall back.
func failOpen[T any](ctx context.Context, log logging.Logger, op, key string, err error, fallback T) T {
	log.Warn(ctx, "storage read failed, using fallback", "op", op, "key", key, "error", err)
	return fallback
}
