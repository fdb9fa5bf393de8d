package entity

// DefaultFestivalDiscount is the discount percent applied when none is given.
const DefaultFestivalDiscount = 10

// Festival is a time-boxed promotion tied to an Edo festival.
type Festival struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Discount    float64 `json:"discount"`
	Description string  `json:"description"`
	IsActive    bool    `json:"isActive"`
}

func (f Festival) Key() string { return f.ID }
