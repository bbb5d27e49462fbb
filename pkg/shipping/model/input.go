package model

// ImageType classifies an image attached to a line item.
type ImageType string

const (
	ImageTypeLogo    ImageType = "Logo"
	ImageTypeArtwork ImageType = "Artwork"
	ImageTypeOther   ImageType = "Other"
)

// ImageRef describes one image to attach to a line item. When Data is set the
// image is uploaded as a file; otherwise URL must point at an already hosted
// image.
type ImageRef struct {
	Name string
	Type ImageType
	URL  string
	Data []byte
}

// LineItem is one caller-supplied line of the shipping order.
//
// PackageQuantities assigns quantities of this item to packages, keyed by
// Package.LocalID. Optional id fields use zero for "absent".
type LineItem struct {
	ProductID   int
	TrimID      int
	YarnID      int
	PackagingID int

	// ItemNumber is optional; the pipeline synthesises one when empty.
	ItemNumber  string
	Name        string
	Description string
	Quantity    int
	UnitPrice   float64

	PackageQuantities map[int]int
	Images            []ImageRef
}

// Dimensions are the physical dimensions of a package.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
	Unit   string
}

// Package describes one physical package of the order.
//
// LocalID is pipeline-scoped: it exists only to correlate line item
// assignments with packages before the server assigns real ids, and it is
// never sent to any collaborator.
type Package struct {
	LocalID int

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

	// EasyPostShipmentID and EasyPostShipmentRateID select a pre-rated
	// carrier shipment. A label is bought only when both are set.
	EasyPostShipmentID     string
	EasyPostShipmentRateID string

	EstimatedDeliveryDays int
}

// Totals are the caller-computed order totals.
type Totals struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// Input is the complete description of the shipping order to create. It is
// immutable for the lifetime of one pipeline run.
type Input struct {
	CustomerID int
	StatusID   int

	// SourceOrderID links the shipping order to the sales order it was
	// created from. Zero means no source order.
	SourceOrderID int

	Items    []LineItem
	Packages []Package

	TaxRate   float64
	Totals    Totals
	OwnerName string
}
