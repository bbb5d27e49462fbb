package shipping_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping"
	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

// fakeCollab implements every collaborator interface in memory, recording
// requests and deletions so tests can assert on them. Failure hooks make a
// chosen call fail.
type fakeCollab struct {
	mu     sync.Mutex
	nextID int

	failCreateOrder   error
	failBuyLabel      error
	failCreatePackage func(req model.PackageRequest) error
	failCreateItem    func(req model.ItemRequest) error
	failCreateLink    error
	failCreateImage   error
	failActivity      error

	failDeleteOrder   error
	failDeletePackage error
	failDeleteItem    error
	failDeleteLink    error

	orderReqs    []model.OrderRequest
	packageReqs  []model.PackageRequest
	itemReqs     []model.ItemRequest
	linkReqs     []model.LinkRequest
	imageReqs    []model.ImageRequest
	urlImageReqs []model.ImageFromURLRequest
	activities   []model.ActivityRequest
	boughtLabels []string

	createdItemIDs []int

	// deleted records the kind of every deletion in call order.
	deleted    []string
	deletedIDs map[string][]int

	creates int
}

func newFakeCollab(t *testing.T) *fakeCollab {
	t.Helper()

	return &fakeCollab{
		nextID:     100,
		deletedIDs: make(map[string][]int),
	}
}

func (f *fakeCollab) collaborators() shipping.Collaborators {
	return shipping.Collaborators{
		Orders:     f,
		Items:      f,
		Packages:   f,
		Links:      f,
		Images:     f,
		Activities: f,
		Labels:     f,
	}
}

func (f *fakeCollab) id() int {
	f.nextID++

	return f.nextID
}

func (f *fakeCollab) CreateOrder(_ context.Context, req model.OrderRequest) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates++
	if f.failCreateOrder != nil {
		return nil, f.failCreateOrder
	}

	f.orderReqs = append(f.orderReqs, req)
	id := f.id()

	return &model.Order{
		ID:         id,
		Number:     fmt.Sprintf("SO-%d", id),
		CustomerID: req.CustomerID,
		StatusID:   req.StatusID,
	}, nil
}

func (f *fakeCollab) DeleteOrder(_ context.Context, orderID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failDeleteOrder != nil {
		return f.failDeleteOrder
	}

	f.deleted = append(f.deleted, "order")
	f.deletedIDs["order"] = append(f.deletedIDs["order"], orderID)

	return nil
}

func (f *fakeCollab) CreateItem(_ context.Context, req model.ItemRequest) (*model.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates++
	if f.failCreateItem != nil {
		if err := f.failCreateItem(req); err != nil {
			return nil, err
		}
	}

	f.itemReqs = append(f.itemReqs, req)
	id := f.id()
	f.createdItemIDs = append(f.createdItemIDs, id)

	return &model.Item{
		ID:         id,
		OrderID:    req.OrderID,
		ItemNumber: req.ItemNumber,
		Name:       req.Name,
	}, nil
}

func (f *fakeCollab) DeleteItem(_ context.Context, itemID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failDeleteItem != nil {
		return f.failDeleteItem
	}

	f.deleted = append(f.deleted, "item")
	f.deletedIDs["item"] = append(f.deletedIDs["item"], itemID)

	return nil
}

func (f *fakeCollab) CreatePackageSpec(_ context.Context, req model.PackageRequest) (*model.PackageSpec, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates++
	if f.failCreatePackage != nil {
		if err := f.failCreatePackage(req); err != nil {
			return nil, err
		}
	}

	f.packageReqs = append(f.packageReqs, req)
	id := f.id()

	return &model.PackageSpec{
		ID:           id,
		OrderID:      req.OrderID,
		Name:         req.Name,
		TrackingCode: req.TrackingCode,
		LabelURL:     req.LabelURL,
	}, nil
}

func (f *fakeCollab) DeletePackageSpec(_ context.Context, packageSpecID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failDeletePackage != nil {
		return f.failDeletePackage
	}

	f.deleted = append(f.deleted, "package")
	f.deletedIDs["package"] = append(f.deletedIDs["package"], packageSpecID)

	return nil
}

func (f *fakeCollab) CreateLink(_ context.Context, req model.LinkRequest) (*model.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates++
	if f.failCreateLink != nil {
		return nil, f.failCreateLink
	}

	f.linkReqs = append(f.linkReqs, req)

	return &model.Link{
		ID:            f.id(),
		PackageSpecID: req.PackageSpecID,
		ItemID:        req.ItemID,
		Quantity:      req.Quantity,
	}, nil
}

func (f *fakeCollab) DeleteLink(_ context.Context, linkID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failDeleteLink != nil {
		return f.failDeleteLink
	}

	f.deleted = append(f.deleted, "link")
	f.deletedIDs["link"] = append(f.deletedIDs["link"], linkID)

	return nil
}

func (f *fakeCollab) CreateImage(_ context.Context, req model.ImageRequest) (*model.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates++
	if f.failCreateImage != nil {
		return nil, f.failCreateImage
	}

	f.imageReqs = append(f.imageReqs, req)

	return &model.Image{ID: f.id(), ItemID: req.ItemID, Description: req.Description}, nil
}

func (f *fakeCollab) CreateImageFromURL(_ context.Context, req model.ImageFromURLRequest) (*model.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates++
	if f.failCreateImage != nil {
		return nil, f.failCreateImage
	}

	f.urlImageReqs = append(f.urlImageReqs, req)

	return &model.Image{ID: f.id(), ItemID: req.ItemID, Description: req.Description}, nil
}

func (f *fakeCollab) RecordActivity(_ context.Context, req model.ActivityRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failActivity != nil {
		return f.failActivity
	}

	f.activities = append(f.activities, req)

	return nil
}

func (f *fakeCollab) BuyLabel(_ context.Context, shipmentID, _ string) (*model.Label, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failBuyLabel != nil {
		return nil, f.failBuyLabel
	}

	f.boughtLabels = append(f.boughtLabels, shipmentID)

	return &model.Label{
		TrackingCode:   "TRK-" + shipmentID,
		LabelURL:       "https://labels.example/" + shipmentID + ".png",
		ShipmentStatus: "purchased",
	}, nil
}

// twoItemsOnePackage is the canonical happy-path input: two line items, both
// assigned to one package, no images, no carrier rate.
func twoItemsOnePackage(t *testing.T) model.Input {
	t.Helper()

	return model.Input{
		CustomerID: 42,
		StatusID:   1,
		TaxRate:    8.25,
		OwnerName:  "Dana Smith",
		Totals:     model.Totals{Subtotal: 300, Tax: 24.75, Shipping: 25, Total: 349.75},
		Items: []model.LineItem{
			{Name: "Merino beanie", Quantity: 10, UnitPrice: 15, PackageQuantities: map[int]int{1: 10}},
			{Name: "Alpaca scarf", Quantity: 5, UnitPrice: 30, PackageQuantities: map[int]int{1: 5}},
		},
		Packages: []model.Package{{
			LocalID:    1,
			Name:       "Box A",
			Weight:     2.5,
			Dimensions: model.Dimensions{Length: 30, Width: 20, Height: 10, Unit: "cm"},
			Address:    "12 Mill Lane",
			City:       "Leeds",
			Zip:        "LS1 4AB",
			Country:    "GB",
		}},
	}
}

func newPipeline(t *testing.T, f *fakeCollab, opts ...shipping.Option) *shipping.Pipeline {
	t.Helper()

	p, err := shipping.New(f.collaborators(), opts...)
	if err != nil {
		t.Fatalf("unable to create pipeline: %v", err)
	}

	return p
}
