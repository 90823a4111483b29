package config

// Vendor credentials are explicit config objects handed to each connector's
// constructor. Nothing here is held as package-level client state.

type ShopifyConfig struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

type OngoingConfig struct {
	BaseURL      string
	Username     string
	Password     string
	GoodsOwnerID string
}

type RackbeatConfig struct {
	BaseURL  string
	APIToken string
}

func LoadShopifyConfig() ShopifyConfig {
	return ShopifyConfig{
		ShopDomain:  getEnv("SHOPIFY_SHOP_DOMAIN", ""),
		AccessToken: getEnv("SHOPIFY_ACCESS_TOKEN", ""),
		APIVersion:  getEnv("SHOPIFY_API_VERSION", "2024-01"),
	}
}

func LoadOngoingConfig() OngoingConfig {
	return OngoingConfig{
		BaseURL:      getEnv("ONGOING_BASE_URL", ""),
		Username:     getEnv("ONGOING_USERNAME", ""),
		Password:     getEnv("ONGOING_PASSWORD", ""),
		GoodsOwnerID: getEnv("ONGOING_GOODS_OWNER_ID", ""),
	}
}

func LoadRackbeatConfig() RackbeatConfig {
	return RackbeatConfig{
		BaseURL:  getEnv("RACKBEAT_BASE_URL", "https://app.rackbeat.com/api"),
		APIToken: getEnv("RACKBEAT_API_TOKEN", ""),
	}
}
