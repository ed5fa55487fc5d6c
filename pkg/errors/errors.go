package errors

import "errors"

// ErrOptimisticLock the record changed since the caller last read it
var ErrOptimisticLock = errors.New("record was modified by another request, reload and retry")
