package config

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `env:"ORG_HOST" env-default:"localhost"`
	Port uint16 `env:"ORG_PORT" env-default:"4000"`
}

// Config is the top-level service configuration, loaded with cleanenv
type Config struct {
	Server          ServerConfig
	Database        DatabaseConfig
	Email           EmailConfig
	JWT             JWTConfig
	BaseURL         string `env:"BASE_URL" env-default:"http://localhost:4000"`
	PersistenceType string `env:"PERSISTENCE_TYPE" env-default:"inmem"`
	DataDir         string `env:"DATA_DIR" env-default:"./data"`
	SeedDemoData    bool   `env:"SEED_DEMO_DATA" env-default:"true"`
}
