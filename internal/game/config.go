package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/samdwyer/dungeoncrawl/internal/ui"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// InfoHeight is the number of terminal rows reserved for the info pane.
const InfoHeight = ui.InfoHeight

// Config holds game configuration options, read from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeons and
	// monster behavior. A seed of 0 means a random seed will be generated.
	Seed int64 `env:"DUNGEONCRAWL_SEED" envDefault:"0"`

	// Level dimensions. Zero means "fit the terminal".
	Width  int `env:"DUNGEONCRAWL_WIDTH" validate:"gte=0"`
	Height int `env:"DUNGEONCRAWL_HEIGHT" validate:"gte=0"`

	LogLevel  string `env:"DUNGEONCRAWL_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `env:"DUNGEONCRAWL_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogFile   string `env:"DUNGEONCRAWL_LOG_FILE" envDefault:"dungeoncrawl.log"`

	MetricsAddr string `env:"DUNGEONCRAWL_METRICS_ADDR" validate:"omitempty,hostname_port"`
	Telemetry   bool   `env:"DUNGEONCRAWL_TELEMETRY" envDefault:"true"`
}

var validate = validator.New()

// LoadConfig parses the configuration from environment variables and
// validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints and that explicit level dimensions can
// hold the room partition.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Width != 0 && c.Width < world.MinWidth {
		return fmt.Errorf("invalid config: width %d below minimum %d: %w", c.Width, world.MinWidth, world.ErrGridTooSmall)
	}
	if c.Height != 0 && c.Height < world.MinHeight {
		return fmt.Errorf("invalid config: height %d below minimum %d: %w", c.Height, world.MinHeight, world.ErrGridTooSmall)
	}
	return nil
}

// LevelSize picks the level dimensions for a terminal of the given size.
func (c Config) LevelSize(screenWidth, screenHeight int) (int, int) {
	width, height := c.Width, c.Height
	if width == 0 {
		width = screenWidth
	}
	if height == 0 {
		height = screenHeight - InfoHeight
	}
	return width, height
}

// NewRand returns the single random source for a run and the seed it was
// built from.
func (c Config) NewRand() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
