package model

import "time"

// OrderRequest is the payload sent to create the shipping order itself.
type OrderRequest struct {
	CustomerID    int
	StatusID      int
	SourceOrderID int

	OrderDate        time.Time
	ExpectedShipDate time.Time

	Subtotal float64
	TaxTotal float64
	Currency string

	Notes     string
	Terms     string
	OwnerName string
}

// Order is a server-assigned shipping order record.
type Order struct {
	ID         int
	Number     string
	CustomerID int
	StatusID   int
}

// ItemRequest is the payload sent to create one shipping order line item.
type ItemRequest struct {
	OrderID int

	ProductID   int
	TrimID      int
	YarnID      int
	PackagingID int

	ItemNumber  string
	Name        string
	Description string
	Quantity    int
	UnitPrice   float64
	TaxRate     float64
}

// Item is a server-assigned line item record.
type Item struct {
	ID         int
	OrderID    int
	ItemNumber string
	Name       string
}

// PackageRequest is the payload sent to create one package specification.
// The label fields are populated only when a label was bought for the
// package.
type PackageRequest struct {
	OrderID int

	Name        string
	CompanyName string
	PhoneNumber string

	Dimensions Dimensions
	Weight     float64

	DimensionPresetID int
	WeightPresetID    int

	Address string
	City    string
	State   string
	Zip     string
	Country string

	Carrier            string
	Service            string
	CarrierDescription string
	ShippingRateID     string

	EasyPostShipmentID     string
	EasyPostShipmentRateID string

	TrackingCode   string
	LabelURL       string
	ShipmentStatus string

	EstimatedDeliveryDays int
}

// PackageSpec is a server-assigned package specification record.
type PackageSpec struct {
	ID           int
	OrderID      int
	Name         string
	TrackingCode string
	LabelURL     string
}

// LinkRequest joins one line item to one package specification with the
// quantity packed into that package.
type LinkRequest struct {
	PackageSpecID int
	ItemID        int
	Quantity      int
}

// Link is a server-assigned package/item join record.
type Link struct {
	ID            int
	PackageSpecID int
	ItemID        int
	Quantity      int
}

// ImageRequest uploads an image file for a line item.
type ImageRequest struct {
	ItemID      int
	Description string
	Type        ImageType
	Data        []byte
}

// ImageFromURLRequest attaches an already hosted image to a line item.
type ImageFromURLRequest struct {
	ItemID      int
	URL         string
	Description string
	Type        ImageType
}

// Image is a server-assigned image record.
type Image struct {
	ID          int
	ItemID      int
	Description string
}

// ActivityRequest is the audit record summarising a pipeline run.
type ActivityRequest struct {
	CustomerID   int
	StatusID     int
	Activity     string
	ActivityType string
	DocumentID   int
	DocumentType string
	OwnerName    string
}

// Label is the result of buying a shipping label for a package.
type Label struct {
	PackageName    string
	TrackingCode   string
	LabelURL       string
	ShipmentStatus string
}

// CreatedEntities accumulates every record created during one pipeline run.
// It is owned exclusively by that run: populated step by step on the forward
// pass and drained by rollback on critical failure.
//
// PackageSpecs and Items are index-aligned with Input.Packages and
// Input.Items respectively; a zero-value slot means the entity was not
// created.
type CreatedEntities struct {
	Order        *Order
	PackageSpecs []PackageSpec
	Items        []Item
	Links        []Link
	Images       []Image
}
