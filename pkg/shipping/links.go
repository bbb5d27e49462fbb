package shipping

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// linkItems creates one join record per (package, item) pair with a positive
// assigned quantity. Pairs are resolved positionally: the created package
// specification and line item records are index-aligned with the input
// slices, so a local id maps to a server id through its index and duplicate
// names are harmless.
//
// A pair whose created record is missing is logged and skipped; a remote
// creation failure is critical.
func (r *run) linkItems(ctx context.Context) error {
	type pair struct {
		pkgIdx  int
		itemIdx int
		qty     int
	}

	var pairs []pair

	for pkgIdx, pkg := range r.input.Packages {
		for itemIdx, item := range r.input.Items {
			qty := item.PackageQuantities[pkg.LocalID]
			if qty <= 0 {
				continue
			}

			if r.entities.PackageSpecs[pkgIdx].ID == 0 || r.entities.Items[itemIdx].ID == 0 {
				r.p.log.Warn("skipping package assignment, created record missing",
					zap.String("package", pkg.Name),
					zap.String("item", item.Name))

				continue
			}

			pairs = append(pairs, pair{pkgIdx: pkgIdx, itemIdx: itemIdx, qty: qty})
		}
	}

	results := make([]model.Link, len(pairs))

	grp, gCtx := errgroup.WithContext(ctx)
	grp.SetLimit(r.p.concurrency)

	for i, pr := range pairs {
		i, pr := i, pr
		grp.Go(func() error {
			pkg := r.input.Packages[pr.pkgIdx]
			item := r.input.Items[pr.itemIdx]

			created, err := r.p.collab.Links.CreateLink(gCtx, model.LinkRequest{
				PackageSpecID: r.entities.PackageSpecs[pr.pkgIdx].ID,
				ItemID:        r.entities.Items[pr.itemIdx].ID,
				Quantity:      pr.qty,
			})
			if err != nil {
				return &LinkCreationError{Package: pkg.Name, Item: item.Name, Err: err}
			}

			results[i] = *created
			r.comp.push(KindLink, item.Name, func(ctx context.Context) error {
				return r.p.collab.Links.DeleteLink(ctx, created.ID)
			})

			r.p.log.Debug("linked item to package",
				zap.String("item", item.Name),
				zap.String("package", pkg.Name),
				zap.Int("quantity", pr.qty))

			return nil
		})
	}

	err := grp.Wait()
	r.entities.Links = results
	if err != nil {
		return err
	}

	r.countEntities(StateLinkingItems, int64(len(results)))

	return nil
}
