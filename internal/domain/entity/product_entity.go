package entity

type ProductStatus string

const (
	ProductApproved ProductStatus = "approved"
	ProductPending  ProductStatus = "pending"
	ProductRejected ProductStatus = "rejected"
)

// Product is a listing awaiting or past moderation. Seller holds the seller's display name.
type Product struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Category   string        `json:"category"`
	Seller     string        `json:"seller"`
	Price      float64       `json:"price"`
	Status     ProductStatus `json:"status"`
	UploadDate string        `json:"uploadDate"`
}

func (p Product) Key() string { return p.ID }
