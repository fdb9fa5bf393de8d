// Package mockdata holds the static records each view falls back to when the
// marketplace REST API is unavailable.
package mockdata

import "github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"

func Users() []entity.User {
	return []entity.User{
		{ID: "user_001", Name: "Chinedu Okonkwo", Email: "chinedu@example.com", Role: entity.RoleSeller, RegistrationDate: "2024-12-01", Status: entity.UserActive},
		{ID: "user_002", Name: "Blessing Eze", Email: "blessing@example.com", Role: entity.RoleBuyer, RegistrationDate: "2024-12-15", Status: entity.UserActive},
		{ID: "user_003", Name: "Grace Adekunle", Email: "grace@example.com", Role: entity.RoleSeller, RegistrationDate: "2025-01-05", Status: entity.UserPending},
		{ID: "user_004", Name: "Emeka Nwosu", Email: "emeka@example.com", Role: entity.RoleBuyer, RegistrationDate: "2024-11-20", Status: entity.UserActive},
		{ID: "user_005", Name: "Zainab Ahmed", Email: "zainab@example.com", Role: entity.RoleSeller, RegistrationDate: "2024-10-10", Status: entity.UserBanned},
	}
}

func Products() []entity.Product {
	return []entity.Product{
		{ID: "prod_001", Title: "Hand-woven Edo Cloth", Category: "Handicrafts", Seller: "Okoro Crafts", Price: 15000, Status: entity.ProductApproved, UploadDate: "2025-01-10"},
		{ID: "prod_002", Title: "Organic Yam Bundle", Category: "Agricultural Produce", Seller: "Premium Produce", Price: 8000, Status: entity.ProductPending, UploadDate: "2025-01-13"},
		{ID: "prod_003", Title: "Bronze Mask Replica", Category: "Cultural Items", Seller: "Heritage Arts", Price: 25000, Status: entity.ProductApproved, UploadDate: "2025-01-11"},
		{ID: "prod_004", Title: "Coral Beadwork Set", Category: "Traditional Items", Seller: "Grace Crafts", Price: 12000, Status: entity.ProductPending, UploadDate: "2025-01-14"},
		{ID: "prod_005", Title: "Herbal Wellness Blend", Category: "Herbal Products", Seller: "Herbal Wellness", Price: 5000, Status: entity.ProductRejected, UploadDate: "2025-01-12"},
	}
}

func Transactions() []entity.Transaction {
	return []entity.Transaction{
		{ID: "txn_001", Buyer: "Chinedu Okonkwo", Seller: "Okoro Crafts", Item: "Hand-woven Edo Cloth", Amount: 15000, Date: "2025-01-14", Status: entity.TransactionCompleted},
		{ID: "txn_002", Buyer: "Grace Adekunle", Seller: "Premium Produce", Item: "Organic Yam Bundle", Amount: 8000, Date: "2025-01-13", Status: entity.TransactionCompleted},
		{ID: "txn_003", Buyer: "Blessing Eze", Seller: "Heritage Arts", Item: "Bronze Mask Replica", Amount: 25000, Date: "2025-01-12", Status: entity.TransactionDisputed},
		{ID: "txn_004", Buyer: "Emeka Nwosu", Seller: "Grace Crafts", Item: "Coral Beadwork Set", Amount: 12000, Date: "2025-01-11", Status: entity.TransactionPending},
		{ID: "txn_005", Buyer: "Zainab Ahmed", Seller: "Herbal Wellness", Item: "Herbal Wellness Blend", Amount: 5000, Date: "2025-01-10", Status: entity.TransactionCompleted},
	}
}

func Categories() []entity.Category {
	return []entity.Category{
		{ID: "cat_001", Name: "Agricultural Produce", Icon: "🌾", Description: "Yams, cassava, plantains, and other traditional crops", ItemCount: 234, EdoMotif: "Benin palace harvest symbols"},
		{ID: "cat_002", Name: "Handicrafts", Icon: "🎨", Description: "Hand-woven textiles, masks, and traditional crafts", ItemCount: 156, EdoMotif: "Benin bronze patterns"},
		{ID: "cat_003", Name: "Cultural Items", Icon: "🏛️", Description: "Festival merchandise and cultural artifacts", ItemCount: 89, EdoMotif: "Ivory mask designs"},
		{ID: "cat_004", Name: "Herbal Products", Icon: "🌿", Description: "Indigenous herbs and medicinal remedies", ItemCount: 124, EdoMotif: "Esan healing traditions"},
		{ID: "cat_005", Name: "Traditional Foods", Icon: "🍲", Description: "Native soups and prepared local cuisines", ItemCount: 67, EdoMotif: "Palace feast imagery"},
	}
}

func Festivals() []entity.Festival {
	return []entity.Festival{
		{ID: "fest_001", Name: "Igue Festival", StartDate: "2025-02-01", EndDate: "2025-02-28", Discount: 15, Description: "New Year celebration with special promotions on all items", IsActive: true},
		{ID: "fest_002", Name: "Ugie Oro Festival", StartDate: "2025-03-15", EndDate: "2025-04-15", Discount: 20, Description: "Harvest season celebration with discounts on agricultural products", IsActive: false},
		{ID: "fest_003", Name: "Edo Day Celebration", StartDate: "2025-05-20", EndDate: "2025-05-31", Discount: 25, Description: "Heritage celebration with special focus on cultural items", IsActive: false},
	}
}
