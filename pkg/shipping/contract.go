package shipping

import (
	"context"

	"github.com/pkg/errors"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// OrderService creates and deletes shipping orders.
type OrderService interface {
	CreateOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID int) error
}

// ItemService creates and deletes shipping order line items.
type ItemService interface {
	CreateItem(ctx context.Context, req model.ItemRequest) (*model.Item, error)
	DeleteItem(ctx context.Context, itemID int) error
}

// PackageService creates and deletes package specifications.
type PackageService interface {
	CreatePackageSpec(ctx context.Context, req model.PackageRequest) (*model.PackageSpec, error)
	DeletePackageSpec(ctx context.Context, packageSpecID int) error
}

// LinkService creates and deletes package/item join records.
type LinkService interface {
	CreateLink(ctx context.Context, req model.LinkRequest) (*model.Link, error)
	DeleteLink(ctx context.Context, linkID int) error
}

// ImageService attaches images to line items, either by uploading a file or
// by referencing an already hosted URL.
type ImageService interface {
	CreateImage(ctx context.Context, req model.ImageRequest) (*model.Image, error)
	CreateImageFromURL(ctx context.Context, req model.ImageFromURLRequest) (*model.Image, error)
}

// ActivityService records activity history entries.
type ActivityService interface {
	RecordActivity(ctx context.Context, req model.ActivityRequest) error
}

// LabelService buys a shipping label for a carrier shipment rate.
type LabelService interface {
	BuyLabel(ctx context.Context, shipmentID, rateID string) (*model.Label, error)
}

// Collaborators bundles the remote services the pipeline depends on. All of
// them must be set.
type Collaborators struct {
	Orders     OrderService
	Items      ItemService
	Packages   PackageService
	Links      LinkService
	Images     ImageService
	Activities ActivityService
	Labels     LabelService
}

func (c Collaborators) validate() error {
	switch {
	case c.Orders == nil:
		return errors.Wrap(ErrCollaboratorMustBeSet, "orders")
	case c.Items == nil:
		return errors.Wrap(ErrCollaboratorMustBeSet, "items")
	case c.Packages == nil:
		return errors.Wrap(ErrCollaboratorMustBeSet, "packages")
	case c.Links == nil:
		return errors.Wrap(ErrCollaboratorMustBeSet, "links")
	case c.Images == nil:
		return errors.Wrap(ErrCollaboratorMustBeSet, "images")
	case c.Activities == nil:
		return errors.Wrap(ErrCollaboratorMustBeSet, "activities")
	case c.Labels == nil:
		return errors.Wrap(ErrCollaboratorMustBeSet, "labels")
	}

	return nil
}
