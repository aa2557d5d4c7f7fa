package domain

// ProductKind discriminates the product type backing an inventory record
type ProductKind string

// Product kinds, in resolution priority order
const (
	KindFood     ProductKind = "food"
	KindToy      ProductKind = "toy"
	KindMedicine ProductKind = "medicine"
)

// ProductRef identifies the concrete product backing an inventory record
type ProductRef struct {
	Kind      ProductKind `json:"type"`
	ProductID uint        `json:"id"`
}
