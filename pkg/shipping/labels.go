package shipping

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// purchaseLabels buys a shipping label for every package that carries both a
// carrier shipment id and a rate id. Packages without a pre-selected rate are
// skipped; that is not an error, label purchase is optional per package.
//
// Purchases run concurrently and the step joins on all of them: a single
// failure fails the whole step.
func (r *run) purchaseLabels(ctx context.Context) error {
	results := make([]*model.Label, len(r.input.Packages))

	grp, gCtx := errgroup.WithContext(ctx)
	grp.SetLimit(r.p.concurrency)

	for i, pkg := range r.input.Packages {
		if pkg.EasyPostShipmentID == "" || pkg.EasyPostShipmentRateID == "" {
			continue
		}

		i, pkg := i, pkg
		grp.Go(func() error {
			label, err := r.p.collab.Labels.BuyLabel(gCtx, pkg.EasyPostShipmentID, pkg.EasyPostShipmentRateID)
			if err != nil {
				return &LabelPurchaseError{Package: pkg.Name, Err: err}
			}

			label.PackageName = pkg.Name
			// Disjoint slots, no locking needed.
			results[i] = label

			return nil
		})
	}

	err := grp.Wait()
	if err != nil {
		return err
	}

	r.labels = make(map[int]model.Label)
	for i, label := range results {
		if label == nil {
			continue
		}

		r.labels[r.input.Packages[i].LocalID] = *label

		r.p.log.Debug("bought label",
			zap.String("package", label.PackageName),
			zap.String("trackingCode", label.TrackingCode))
	}

	r.countEntities(StatePurchasingLabels, int64(len(r.labels)))

	return nil
}
