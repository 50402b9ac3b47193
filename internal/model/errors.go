package model

import "fmt"

// InvalidMetadataError reports a checklist/section/question invariant
// violation, named by the offending identifier.
type InvalidMetadataError struct {
	ID     string
	Reason string
}

func (e *InvalidMetadataError) Error() string {
	return fmt.Sprintf("invalid metadata for %q: %s", e.ID, e.Reason)
}

func invalidMetadata(id, reason string, args ...any) error {
	return &InvalidMetadataError{ID: id, Reason: fmt.Sprintf(reason, args...)}
}
