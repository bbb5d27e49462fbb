package shipping

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrCollaboratorMustBeSet = errors.New("collaborator must be set")
)

// ValidationError reports structural problems in the input, found before any
// remote mutation.
type ValidationError struct {
	Reason string
	// Packages lists the package names with no items assigned.
	Packages []string
	// Items lists the item names whose assignments reference an unknown
	// package local id.
	Items []string
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Packages) > 0:
		return fmt.Sprintf("%s: %s; assign items to every package or remove empty packages",
			e.Reason, strings.Join(e.Packages, ", "))
	case len(e.Items) > 0:
		return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Items, ", "))
	}

	return e.Reason
}

// OrderCreationError reports a failure to create the shipping order itself.
type OrderCreationError struct {
	Err error
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("unable to create shipping order: %v", e.Err)
}

func (e *OrderCreationError) Unwrap() error { return e.Err }
func (e *OrderCreationError) Cause() error  { return e.Err }

// LabelPurchaseError reports a failed label purchase for one package. A
// single failure fails the whole label step: an order with labels for some
// packages but not others is not a state the caller should receive silently.
type LabelPurchaseError struct {
	Package string
	Err     error
}

func (e *LabelPurchaseError) Error() string {
	return fmt.Sprintf("unable to buy label for package %q: %v", e.Package, e.Err)
}

func (e *LabelPurchaseError) Unwrap() error { return e.Err }
func (e *LabelPurchaseError) Cause() error  { return e.Err }

// PackageCreationError reports a failed package specification creation.
type PackageCreationError struct {
	Package string
	Err     error
}

func (e *PackageCreationError) Error() string {
	return fmt.Sprintf("unable to create package specification %q: %v", e.Package, e.Err)
}

func (e *PackageCreationError) Unwrap() error { return e.Err }
func (e *PackageCreationError) Cause() error  { return e.Err }

// LineItemCreationError reports a failed line item creation.
type LineItemCreationError struct {
	Item string
	Err  error
}

func (e *LineItemCreationError) Error() string {
	return fmt.Sprintf("unable to create line item %q: %v", e.Item, e.Err)
}

func (e *LineItemCreationError) Unwrap() error { return e.Err }
func (e *LineItemCreationError) Cause() error  { return e.Err }

// LinkCreationError reports a failed package/item link creation.
type LinkCreationError struct {
	Package string
	Item    string
	Err     error
}

func (e *LinkCreationError) Error() string {
	return fmt.Sprintf("unable to link item %q to package %q: %v", e.Item, e.Package, e.Err)
}

func (e *LinkCreationError) Unwrap() error { return e.Err }
func (e *LinkCreationError) Cause() error  { return e.Err }

// RollbackError reports one deletion that failed while rolling back.
type RollbackError struct {
	Kind EntityKind
	Name string
	Err  error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("unable to delete %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *RollbackError) Unwrap() error { return e.Err }
func (e *RollbackError) Cause() error  { return e.Err }

// PipelineError is what Execute returns on critical failure. Err is always
// the original step error; Rollback holds the deletions that failed while
// cleaning up, if any.
type PipelineError struct {
	State    State
	Err      error
	Rollback []*RollbackError
}

func (e *PipelineError) Error() string {
	if e.CleanupComplete() {
		return fmt.Sprintf("shipping order pipeline failed (%s), all created entities were cleaned up: %v",
			e.State, e.Err)
	}

	return fmt.Sprintf("shipping order pipeline failed (%s) and %d cleanup deletions also failed, manual cleanup may be required: %v",
		e.State, len(e.Rollback), e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
func (e *PipelineError) Cause() error  { return e.Err }

// CleanupComplete reports whether rollback deleted every created entity.
// Callers use it to decide between a plain retry message and a
// contact-support message.
func (e *PipelineError) CleanupComplete() bool { return len(e.Rollback) == 0 }
