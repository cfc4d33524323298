package core

type Config struct {
	Environment string
	Port        int
	SkipAuth    bool
	Otel        OtelConfig
	Redis       RedisConfig
	PayPal      PayPalConfig
	HubSpot     HubSpotConfig
	Auth        AuthConfig
	// Public site base URL, used to build PayPal return/cancel URLs.
	BaseURL string
}

type OtlpConfig struct {
	Endpoint string
	Insecure bool
}

type OtelConfig struct {
	OtlpExporter OtlpConfig
	Disable      bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	// "live" or "sandbox"; selects the API base URL.
	Mode string
}

type HubSpotConfig struct {
	AccessToken string
	PortalID    string
}

type AuthConfig struct {
	// NextAuth session JWT signing secret (HS256).
	Secret string
	// Expected issuer, typically the site URL.
	Issuer string
}
