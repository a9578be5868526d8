package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	MongoURI       string        `env:"MONGO_URI,required"`
	DBName         string        `env:"DB_NAME" envDefault:"clothing-store-db"`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev-secret"`
	RequireAuth    bool          `env:"REQUIRE_AUTH" envDefault:"false"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	ReportRefresh  string        `env:"REPORT_REFRESH" envDefault:"@every 5m"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"5m"`
}

// Load reads .env if present, then parses the environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
