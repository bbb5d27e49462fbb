package shipping

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

const (
	defaultCurrency  = "USD"
	defaultOwnerName = "Undefined User"

	// expectedShipDays is how far ahead the expected ship date is set when
	// the order is created.
	expectedShipDays = 7
)

func (r *run) createOrder(ctx context.Context) error {
	now := time.Now()

	req := model.OrderRequest{
		CustomerID:       r.input.CustomerID,
		StatusID:         r.input.StatusID,
		SourceOrderID:    r.input.SourceOrderID,
		OrderDate:        now,
		ExpectedShipDate: now.AddDate(0, 0, expectedShipDays),
		Subtotal:         r.input.Totals.Subtotal,
		TaxTotal:         r.input.Totals.Tax,
		Currency:         defaultCurrency,
		OwnerName:        ownerOrDefault(r.input.OwnerName),
	}

	order, err := r.p.collab.Orders.CreateOrder(ctx, req)
	if err != nil {
		return &OrderCreationError{Err: err}
	}

	r.entities.Order = order
	r.comp.push(KindOrder, order.Number, func(ctx context.Context) error {
		return r.p.collab.Orders.DeleteOrder(ctx, order.ID)
	})
	r.countEntities(StateCreatingOrder, 1)

	r.p.log.Debug("created shipping order",
		zap.String("number", order.Number),
		zap.Int("id", order.ID))

	return nil
}

func ownerOrDefault(owner string) string {
	if owner == "" {
		return defaultOwnerName
	}

	return owner
}
