package qos

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config maps environment variables onto a Profile.
type Config struct {
	History               string `env:"QOS_HISTORY" envDefault:"keep_last"`
	Depth                 int    `env:"QOS_DEPTH" envDefault:"10"`
	Reliability           string `env:"QOS_RELIABILITY" envDefault:"reliable"`
	ReliabilityShapesDrop bool   `env:"QOS_RELIABILITY_SHAPES_DROP" envDefault:"false"`
}

// loadDotEnv makes .env loading a one-time side effect; a missing file is
// not an error.
var loadDotEnv = sync.OnceFunc(func() {
	_ = godotenv.Load()
})

// Load builds a validated Profile from environment variables.
// A .env file in the working directory is loaded on first use.
func Load() (Profile, error) {
	loadDotEnv()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	return cfg.Profile()
}

// Profile converts the raw configuration into a validated Profile.
func (c Config) Profile() (Profile, error) {
	p := Profile{
		Depth:                 c.Depth,
		ReliabilityShapesDrop: c.ReliabilityShapesDrop,
	}

	switch c.History {
	case "keep_last":
		p.History = KeepLast
	case "keep_all":
		p.History = KeepAll
	default:
		return Profile{}, fmt.Errorf("%w: unknown history %q", ErrInvalidProfile, c.History)
	}

	switch c.Reliability {
	case "reliable":
		p.Reliability = Reliable
	case "best_effort":
		p.Reliability = BestEffort
	default:
		return Profile{}, fmt.Errorf("%w: unknown reliability %q", ErrInvalidProfile, c.Reliability)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}
