package mockdata

import "github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"

func Settings() entity.Settings {
	return entity.Settings{
		Theme: entity.ThemeSettings{
			PrimaryColor: "oklch(0.35_0.18_20)",
			AccentColor:  "oklch(0.7_0.15_60)",
			DarkMode:     false,
		},
		Platform: entity.PlatformSettings{
			PlatformFee:     2.5,
			MinWithdrawal:   1000,
			MaxProductPrice: 1000000,
			MaintenanceMode: false,
		},
		Payments: []entity.PaymentIntegration{
			{Provider: entity.ProviderStripe, Enabled: false, APIKey: ""},
			{Provider: entity.ProviderPaystack, Enabled: true, APIKey: "pk_live_***"},
			{Provider: entity.ProviderFlutterwave, Enabled: true, APIKey: "pk_***"},
		},
	}
}

func AdminProfile() entity.AdminProfile {
	return entity.AdminProfile{
		Name:  "Admin User",
		Email: "admin@marketplace.edo",
		Role:  "Administrator",
	}
}

func Reference() entity.Reference {
	return entity.Reference{
		Categories: []string{
			"Agricultural Produce",
			"Handicrafts",
			"Textiles",
			"Cultural Items",
			"Herbal Products",
			"Traditional Foods",
			"Local Services",
		},
		UserRoles:           []entity.UserRole{entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleModerator},
		UserStatuses:        []entity.UserStatus{entity.UserActive, entity.UserPending, entity.UserBanned},
		ProductStatuses:     []entity.ProductStatus{entity.ProductApproved, entity.ProductPending, entity.ProductRejected},
		TransactionStatuses: []entity.TransactionStatus{entity.TransactionCompleted, entity.TransactionPending, entity.TransactionDisputed},
		Festivals: []entity.FestivalMonth{
			{Name: "Igue Festival", Month: "February"},
			{Name: "Ugie Oro Festival", Month: "March-April"},
			{Name: "Edo Day Celebration", Month: "May"},
			{Name: "Abaraka Festival", Month: "September"},
		},
		CulturalMotifs: map[string]string{
			"benin_bronze":         "Benin Bronze Artistry",
			"coral_beads":          "Coral Bead Patterns",
			"ivory_mask":           "Ivory Mask Designs",
			"palace_imagery":       "Benin Palace Imagery",
			"traditional_textiles": "Igarra Cloth Weaving",
		},
	}
}
