package textom

import (
	"fmt"

	"github.com/pkg/errors"
)

// HierarchyError is returned when a node is inserted under a parent that
// does not accept its type.
type HierarchyError struct {
	Parent  NodeType
	Child   NodeType
	Allowed []NodeType
}

func (e *HierarchyError) Error() string {
	return fmt.Sprintf("HierarchyError: Expected child node of %s to be one of %v, got %s", e.Parent, e.Allowed, e.Child)
}

// IsHierarchyError reports whether err, or the error it wraps, is a
// HierarchyError.
func IsHierarchyError(err error) bool {
	_, ok := errors.Cause(err).(*HierarchyError)
	return ok
}
