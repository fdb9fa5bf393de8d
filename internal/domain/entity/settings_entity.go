package entity

type ThemeSettings struct {
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	DarkMode     bool   `json:"darkMode"`
}

type PlatformSettings struct {
	PlatformFee     float64 `json:"platformFee"`
	MinWithdrawal   float64 `json:"minWithdrawal"`
	MaxProductPrice float64 `json:"maxProductPrice"`
	MaintenanceMode bool    `json:"maintenanceMode"`
}

type PaymentProvider string

const (
	ProviderStripe      PaymentProvider = "stripe"
	ProviderPaystack    PaymentProvider = "paystack"
	ProviderFlutterwave PaymentProvider = "flutterwave"
)

// PaymentProviders lists the supported providers in display order.
var PaymentProviders = []PaymentProvider{ProviderStripe, ProviderPaystack, ProviderFlutterwave}

func (p PaymentProvider) Valid() bool {
	for _, v := range PaymentProviders {
		if p == v {
			return true
		}
	}
	return false
}

// PaymentIntegration is a gateway label with its key. Nothing is charged through it.
type PaymentIntegration struct {
	Provider PaymentProvider `json:"provider"`
	Enabled  bool            `json:"enabled"`
	APIKey   string          `json:"apiKey"`
}

type Settings struct {
	Theme    ThemeSettings        `json:"theme"`
	Platform PlatformSettings     `json:"platform"`
	Payments []PaymentIntegration `json:"payments"`
}
