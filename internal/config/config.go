package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseURL string        `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret   string        `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiry   time.Duration `env:"JWT_EXPIRY" envDefault:"8h"`
	Port        int           `env:"PORT" envDefault:"8080"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv      string        `env:"APP_ENV" envDefault:"production"`
	Version     string        `env:"APP_VERSION" envDefault:"1.0.0"`

	BankName      string `env:"BANK_NAME" envDefault:"Teller Ledger Bank"`
	BankCode      string `env:"BANK_CODE" envDefault:"TLB"`
	AdminPassword string `env:"ADMIN_PASSWORD,required,notEmpty"`

	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	InterestSchedulerEnabled  bool          `env:"INTEREST_SCHEDULER_ENABLED" envDefault:"false"`
	InterestSchedulerInterval time.Duration `env:"INTEREST_SCHEDULER_INTERVAL" envDefault:"1h"`

	DBMaxOpenConns     int `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns     int `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetimeS int `env:"DB_CONN_MAX_LIFETIME_S" envDefault:"300"`
	DBConnMaxIdleTimeS int `env:"DB_CONN_MAX_IDLE_TIME_S" envDefault:"60"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if len(cfg.AdminPassword) < 6 {
		return nil, fmt.Errorf("config.Load: ADMIN_PASSWORD must be at least 6 characters")
	}
	return &cfg, nil
}
