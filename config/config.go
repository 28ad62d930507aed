package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpPort uint16 `envconfig:"CLINIC_HTTP_PORT" default:"8080" required:"true"`

	// Number of upcoming appointments returned in a dashboard
	AppointmentWindowSize int `envconfig:"CLINIC_DASHBOARD_APPOINTMENT_WINDOW" default:"5"`
	// Number of most recent test results returned in a dashboard
	RecentTestResultsLimit int           `envconfig:"CLINIC_DASHBOARD_RECENT_TESTS" default:"5"`
	DashboardTimeout       time.Duration `envconfig:"CLINIC_DASHBOARD_TIMEOUT" default:"10s"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	if err := envconfig.Process("", c); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.AppointmentWindowSize < 1 {
		return fmt.Errorf("appointment window size must be positive, got %d", c.AppointmentWindowSize)
	}
	if c.RecentTestResultsLimit < 1 {
		return fmt.Errorf("recent test results limit must be positive, got %d", c.RecentTestResultsLimit)
	}
	return nil
}

func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
