package auth

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SessionTokenSecret   string        `envconfig:"CLINIC_SESSION_TOKEN_SECRET" required:"true"`
	CacheSize            int           `envconfig:"CLINIC_SESSION_CACHE_SIZE" default:"10000"`
	CacheEntryExpiration time.Duration `envconfig:"CLINIC_SESSION_CACHE_EXPIRATION" default:"5m"`
}

func NewConfig() (Config, error) {
	cfg := Config{}
	err := envconfig.Process("", &cfg)
	return cfg, err
}
