package shipping

import (
	"context"
	"fmt"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// recordActivity writes one audit entry summarising what the run created.
func (r *run) recordActivity(ctx context.Context) error {
	order := r.entities.Order

	return r.p.collab.Activities.RecordActivity(ctx, model.ActivityRequest{
		CustomerID: r.input.CustomerID,
		StatusID:   r.input.StatusID,
		Activity: fmt.Sprintf("Created new Shipping Order #%s with %d items, %d packages, and %d images",
			order.Number, len(r.entities.Items), len(r.entities.PackageSpecs), len(r.entities.Images)),
		ActivityType: "Create",
		DocumentID:   order.ID,
		DocumentType: "Shipping",
		OwnerName:    ownerOrDefault(r.input.OwnerName),
	})
}
