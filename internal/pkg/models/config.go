package models

// Config is the full application configuration, populated from the
// environment by the config package.
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Backend   BackendConfig
	Geoapify  GeoapifyConfig
	Fuel      FuelConfig
	TokenFile string
	Logger    LoggerConfig
}

// AppConfig holds application identity settings.
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds the HTTP serving surface settings.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // seconds
	WriteTimeout    int // seconds
	ShutdownTimeout int // seconds
}

// BackendConfig holds the trip backend REST API settings.
type BackendConfig struct {
	BaseURL string
	Timeout int // seconds
}

// GeoapifyConfig holds the geocoding/static-map provider settings.
type GeoapifyConfig struct {
	APIKey  string
	BaseURL string
	Timeout int // seconds
}

// FuelConfig holds the placeholder fuel economy used when a trip does not
// carry its own values.
type FuelConfig struct {
	EfficiencyMPG  float64
	PricePerGallon float64
}

// LoggerConfig holds logger settings.
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
