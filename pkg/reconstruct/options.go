package reconstruct

import (
	"math/big"

	"github.com/rs/zerolog"
)

type config struct {
	exhaustiveLimit int
	modulus         *big.Int
	logger          zerolog.Logger
}

// Option configures Reconstruct and Batch.
type Option func(*config)

// WithExhaustiveCheck verifies up to limit k-subsets other than the selected
// one, instead of a single alternative. A limit ≤ 0 keeps the default.
func WithExhaustiveCheck(limit int) Option {
	return func(c *config) {
		c.exhaustiveLimit = limit
	}
}

// WithModulus interpolates in the prime field ℤₚ instead of the rationals.
// The secret is then returned in [0, p).
func WithModulus(p *big.Int) Option {
	return func(c *config) {
		if p == nil {
			c.modulus = nil
			return
		}
		c.modulus = new(big.Int).Set(p)
	}
}

// WithLogger logs the steps of a reconstruction at debug level.
// Secrets are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	c := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
