package entity

// Reference holds the static marketplace vocabularies.
type Reference struct {
	Categories          []string            `json:"categories"`
	UserRoles           []UserRole          `json:"userRoles"`
	UserStatuses        []UserStatus        `json:"userStatuses"`
	ProductStatuses     []ProductStatus     `json:"productStatuses"`
	TransactionStatuses []TransactionStatus `json:"transactionStatuses"`
	Festivals           []FestivalMonth     `json:"festivals"`
	CulturalMotifs      map[string]string   `json:"culturalMotifs"`
}

type FestivalMonth struct {
	Name  string `json:"name"`
	Month string `json:"month"`
}
