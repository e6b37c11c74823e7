// Package config loads the calculator's rates and form defaults from an
// optional YAML file, with environment overrides for the server.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"sunday-pay/internal/model"
	"sunday-pay/internal/staffing"
)

const (
	DefaultConfigFile = "sundaypay.yaml"
	DefaultPort       = "8080"
)

type Config struct {
	Server   Server               `yaml:"server"`
	Rates    model.Rates          `yaml:"rates"`
	Defaults FormDefaults         `yaml:"defaults"`
	Staffing staffing.Assumptions `yaml:"staffing"`
	Bands    []model.Band         `yaml:"bands"`
}

type Server struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

// FormDefaults prefill the forms and fill any request field left out.
type FormDefaults struct {
	Band               string           `yaml:"band"`
	PayPoint           string           `yaml:"pay_point"`
	WeeklyHours        float64          `yaml:"weekly_hours"`
	BankSundayHours    float64          `yaml:"bank_sunday_hours"`
	Deductions         model.Deductions `yaml:"deductions"`
	DeductionModel     string           `yaml:"deduction_model"`
	IncludeLeaveUplift bool             `yaml:"include_leave_uplift"`
	AnnualLeaveWeeks   float64          `yaml:"annual_leave_weeks"`
	PensionRate        float64          `yaml:"pension_rate"`
}

// Default returns the built-in configuration. The rates are illustrative
// placeholders, not real-world agreed figures.
func Default() *Config {
	return &Config{
		Server: Server{
			Port:     DefaultPort,
			LogLevel: "info",
		},
		Rates: model.Rates{
			Enhancement:           0.60,
			ContractedSundayHours: 12,
			WeeksPerYear:          52,
		},
		Defaults: FormDefaults{
			Band:               "Band 6",
			PayPoint:           "Mid",
			WeeklyHours:        37.5,
			BankSundayHours:    10.5,
			DeductionModel:     model.DeductionModelFlat,
			IncludeLeaveUplift: true,
			AnnualLeaveWeeks:   6.5,
			PensionRate:        0.107,
		},
		Staffing: staffing.Assumptions{
			StaffRequiredPerSunday: 5,
			AffectedFTE:            22,
			OptOutEstimate:         4,
			WeeksPerYear:           52,
		},
	}
}

// Load reads .env, then the YAML file at path merged over Default, then the
// PORT and SUNDAYPAY_LOG_LEVEL overrides. An empty path falls back to
// SUNDAYPAY_CONFIG and then to ./sundaypay.yaml; only an explicitly named
// file is required to exist.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("SUNDAYPAY_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("SUNDAYPAY_LOG_LEVEL"); level != "" {
		cfg.Server.LogLevel = level
	}
	if cfg.Staffing.WeeksPerYear == 0 {
		cfg.Staffing.WeeksPerYear = cfg.Rates.WeeksPerYear
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Rates.Enhancement < 0 {
		return errors.New("rates.enhancement must be non-negative")
	}
	if c.Rates.ContractedSundayHours <= 0 {
		return errors.New("rates.contracted_sunday_hours must be positive")
	}
	if c.Rates.WeeksPerYear <= 0 {
		return errors.New("rates.weeks_per_year must be positive")
	}
	if c.Defaults.Deductions.Total().GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("defaults.deductions must not exceed 100%")
	}
	switch c.Defaults.DeductionModel {
	case model.DeductionModelFlat, model.DeductionModelUK:
	default:
		return fmt.Errorf("defaults.deduction_model %q: want flat or uk", c.Defaults.DeductionModel)
	}
	if c.Staffing.AffectedFTE < 0 || c.Staffing.OptOutEstimate < 0 || c.Staffing.StaffRequiredPerSunday < 0 {
		return errors.New("staffing figures must be non-negative")
	}
	return nil
}

// Level maps the configured log level onto slog, defaulting to info.
func (s Server) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
