package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Selectors are the markup hooks the results page exposes for each listing.
type Selectors struct {
	Container string
	Title     string
	Price     string
	Location  string
	Link      string
}

type Config struct {
	SearchURL   string
	SearchQuery string
	Selectors   Selectors
	SettleDelay time.Duration
	MaxListings int
	Headless    bool
	OutputPath  string
	PostgresDSN string
}

func DefaultConfig() *Config {
	return &Config{
		SearchURL:   "https://www.olx.in/items/q-car-cover",
		SearchQuery: "Car Cover",
		Selectors: Selectors{
			Container: `[data-aut-id="itemBox"]`,
			Title:     `[data-aut-id="itemTitle"]`,
			Price:     `[data-aut-id="itemPrice"]`,
			Location:  `[data-aut-id="item-location"]`,
			Link:      "a",
		},
		SettleDelay: 5 * time.Second,
		MaxListings: 10,
		Headless:    true,
		OutputPath:  "car_cover_search_results.json",
	}
}

// Load returns DefaultConfig with the optional Postgres mirror switched on
// when OLX_PG_DSN is present in the environment or a local .env file.
// The mirror is the only environment-driven behaviour; search URL, query
// and output path stay fixed.
func Load() *Config {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.PostgresDSN = strings.TrimSpace(os.Getenv("OLX_PG_DSN"))
	return cfg
}

func (c *Config) PostgresEnabled() bool {
	return c.PostgresDSN != ""
}
