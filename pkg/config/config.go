package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Mode selects which set of commands the bot serves.
type Mode string

const (
	// ModeMemory keeps table orders in the local ledger only.
	ModeMemory Mode = "memory"
	// ModeWizard takes orders with a button driven flow and keeps them in the ledger.
	ModeWizard Mode = "wizard"
	// ModeAPI forwards every command to the backend and holds no state.
	ModeAPI Mode = "api"
)

// Config is everything the bot reads from the environment.
type Config struct {
	TelegramToken string        `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
	Mode          Mode          `env:"BOT_MODE" envDefault:"api"`
	APIBaseURL    string        `env:"API_BASE_URL"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	WaiterChats   []int64       `env:"GRUPO_GARCONS_IDS" envSeparator:","`
	KitchenChats  []int64       `env:"GRUPO_COZINHA_IDS" envSeparator:","`
	LedgerDir     string        `env:"LEDGER_DIR"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	PollTimeout   int           `env:"POLL_TIMEOUT" envDefault:"60"`
}

// LoadDotEnv reads variables from the given files (".env" when none given) without overriding the ones
// already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the variables the selected mode depends on are present.
func (c Config) Validate() error {
	var errs []error
	switch c.Mode {
	case ModeMemory:
	case ModeWizard, ModeAPI:
		if c.APIBaseURL == "" {
			errs = append(errs, fmt.Errorf("API_BASE_URL must be provided in %s mode", c.Mode))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown BOT_MODE %q, expected memory, wizard or api", c.Mode))
	}
	if len(c.WaiterChats) == 0 {
		errs = append(errs, errors.New("GRUPO_GARCONS_IDS must be provided"))
	}
	if c.Mode == ModeAPI && len(c.KitchenChats) == 0 {
		errs = append(errs, errors.New("GRUPO_COZINHA_IDS must be provided in api mode"))
	}
	if c.APITimeout <= 0 {
		errs = append(errs, errors.New("API_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}
