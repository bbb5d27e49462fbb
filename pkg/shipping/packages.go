package shipping

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// createPackageSpecs creates one package specification per input package,
// concurrently, merging in the label data bought for the package when
// present. The created records are index-aligned with the input packages so
// later steps can resolve local ids by position.
//
// Partial cleanup is not attempted here: every successful creation pushes an
// undo action and the orchestrator unwinds them on failure.
func (r *run) createPackageSpecs(ctx context.Context) error {
	results := make([]model.PackageSpec, len(r.input.Packages))

	grp, gCtx := errgroup.WithContext(ctx)
	grp.SetLimit(r.p.concurrency)

	for i, pkg := range r.input.Packages {
		i, pkg := i, pkg
		grp.Go(func() error {
			label, hasLabel := r.labels[pkg.LocalID]

			created, err := r.p.collab.Packages.CreatePackageSpec(gCtx, packageRequest(r.entities.Order.ID, pkg, label, hasLabel))
			if err != nil {
				return &PackageCreationError{Package: pkg.Name, Err: err}
			}

			results[i] = *created
			r.comp.push(KindPackageSpec, pkg.Name, func(ctx context.Context) error {
				return r.p.collab.Packages.DeletePackageSpec(ctx, created.ID)
			})

			r.p.log.Debug("created package specification",
				zap.String("name", pkg.Name),
				zap.Int("id", created.ID))

			return nil
		})
	}

	err := grp.Wait()
	r.entities.PackageSpecs = results
	if err != nil {
		return err
	}

	r.countEntities(StateCreatingPackages, int64(len(results)))

	return nil
}

func packageRequest(orderID int, pkg model.Package, label model.Label, hasLabel bool) model.PackageRequest {
	req := model.PackageRequest{
		OrderID:                orderID,
		Name:                   pkg.Name,
		CompanyName:            pkg.CompanyName,
		PhoneNumber:            pkg.PhoneNumber,
		Dimensions:             pkg.Dimensions,
		Weight:                 pkg.Weight,
		DimensionPresetID:      pkg.DimensionPresetID,
		WeightPresetID:         pkg.WeightPresetID,
		Address:                pkg.Address,
		City:                   pkg.City,
		State:                  pkg.State,
		Zip:                    pkg.Zip,
		Country:                pkg.Country,
		Carrier:                pkg.Carrier,
		Service:                pkg.Service,
		CarrierDescription:     pkg.CarrierDescription,
		ShippingRateID:         pkg.ShippingRateID,
		EasyPostShipmentID:     pkg.EasyPostShipmentID,
		EasyPostShipmentRateID: pkg.EasyPostShipmentRateID,
		EstimatedDeliveryDays:  pkg.EstimatedDeliveryDays,
	}

	if hasLabel {
		req.TrackingCode = label.TrackingCode
		req.LabelURL = label.LabelURL
		req.ShipmentStatus = label.ShipmentStatus
	}

	return req
}
