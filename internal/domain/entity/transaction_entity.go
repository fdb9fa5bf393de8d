package entity

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionDisputed  TransactionStatus = "disputed"
)

type Transaction struct {
	ID             string            `json:"id"`
	Buyer          string            `json:"buyer"`
	Seller         string            `json:"seller"`
	Item           string            `json:"item"`
	Amount         float64           `json:"amount"`
	Date           string            `json:"date"`
	Status         TransactionStatus `json:"status"`
	ResolutionNote string            `json:"resolutionNote,omitempty"`
}

func (t Transaction) Key() string { return t.ID }

// TransactionSummary aggregates completed transactions.
type TransactionSummary struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalFees             float64 `json:"totalFees"`
	PlatformFeePercent    float64 `json:"platformFeePercent"`
	TotalRevenueFormatted string  `json:"totalRevenueFormatted"`
	TotalFeesFormatted    string  `json:"totalFeesFormatted"`
	Completed             int     `json:"completed"`
	Pending               int     `json:"pending"`
	Disputed              int     `json:"disputed"`
}
