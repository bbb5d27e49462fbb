// Package shipping creates a shipping order together with its dependent
// entities: package specifications, line items, package/item links, shipping
// labels and images.
//
// The creation is a fixed sequence of steps, each depending on identifiers
// returned by the previous ones. The pipeline validates the input before any
// remote mutation, then creates the order, buys carrier labels for packages
// that carry a pre-selected rate, creates package specifications (merging in
// the label data), creates the line items, and links items to packages.
// Within a step, independent creations are dispatched concurrently and joined
// before the next step starts.
//
// When a critical step fails, every entity created so far is deleted again in
// reverse dependency order and the original error is returned to the caller,
// annotated with the rollback outcome. Image attachment and the audit record
// are best-effort: their failures are logged and never abort the run.
//
// All remote operations are consumed through the Collaborators interfaces;
// the package implements none of them.
package shipping
