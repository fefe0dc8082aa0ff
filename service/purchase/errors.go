package purchase

import (
	"errors"
	"fmt"
)

// ValidationError is a field-scoped, user-correctable error. Submission is
// blocked but the form stays usable.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// CatalogLookupError wraps a failed product detail fetch. The affected row is
// left without a variant list; re-selecting the product retries.
type CatalogLookupError struct {
	ProductID uint
	Err       error
}

func (e *CatalogLookupError) Error() string {
	return fmt.Sprintf("catalog lookup for product %d: %v", e.ProductID, e.Err)
}

func (e *CatalogLookupError) Unwrap() error {
	return e.Err
}

// errStaleResult marks a catalog response that arrived after the row's
// product selection changed. Never surfaced: callers discard it silently.
var errStaleResult = errors.New("stale catalog result")
