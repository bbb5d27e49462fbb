package shipping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// createItems creates the shipping order line items, concurrently. Items do
// not reference each other so creation order does not matter; the created
// records are index-aligned with the input items.
func (r *run) createItems(ctx context.Context) error {
	results := make([]model.Item, len(r.input.Items))

	grp, gCtx := errgroup.WithContext(ctx)
	grp.SetLimit(r.p.concurrency)

	for i, item := range r.input.Items {
		i, item := i, item
		grp.Go(func() error {
			req := model.ItemRequest{
				OrderID:     r.entities.Order.ID,
				ProductID:   item.ProductID,
				TrimID:      item.TrimID,
				YarnID:      item.YarnID,
				PackagingID: item.PackagingID,
				ItemNumber:  item.ItemNumber,
				Name:        item.Name,
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				TaxRate:     r.input.TaxRate,
			}
			if req.ItemNumber == "" {
				req.ItemNumber = newItemNumber()
			}

			created, err := r.p.collab.Items.CreateItem(gCtx, req)
			if err != nil {
				return &LineItemCreationError{Item: item.Name, Err: err}
			}

			results[i] = *created
			r.comp.push(KindItem, item.Name, func(ctx context.Context) error {
				return r.p.collab.Items.DeleteItem(ctx, created.ID)
			})

			r.p.log.Debug("created line item",
				zap.String("name", item.Name),
				zap.Int("id", created.ID))

			return nil
		})
	}

	err := grp.Wait()
	r.entities.Items = results
	if err != nil {
		return err
	}

	r.countEntities(StateCreatingItems, int64(len(results)))

	return nil
}

// newItemNumber synthesises a display item number. It is unique enough for
// display purposes, not a strict uniqueness guarantee.
func newItemNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return fmt.Sprintf("SO-ITEM-%d-%s", time.Now().UnixMilli(), suffix)
}
