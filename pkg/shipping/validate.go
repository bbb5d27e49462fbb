package shipping

import (
	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// Validate checks the structural preconditions of an input before any remote
// mutation: every declared package must have at least one line item assigned
// to it, and every assignment must reference a declared package. It has no
// side effects.
func Validate(input model.Input) error {
	known := make(map[int]struct{}, len(input.Packages))
	for _, pkg := range input.Packages {
		known[pkg.LocalID] = struct{}{}
	}

	var empty []string

	for _, pkg := range input.Packages {
		assigned := false

		for _, item := range input.Items {
			if item.PackageQuantities[pkg.LocalID] > 0 {
				assigned = true

				break
			}
		}

		if !assigned {
			empty = append(empty, pkg.Name)
		}
	}

	if len(empty) > 0 {
		return &ValidationError{
			Reason:   "the following packages have no items assigned",
			Packages: empty,
		}
	}

	var dangling []string

	for _, item := range input.Items {
		for localID := range item.PackageQuantities {
			if _, ok := known[localID]; !ok {
				dangling = append(dangling, item.Name)

				break
			}
		}
	}

	if len(dangling) > 0 {
		return &ValidationError{
			Reason: "the following items are assigned to packages that do not exist",
			Items:  dangling,
		}
	}

	return nil
}
