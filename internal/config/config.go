package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings of the sss command. Every field can also be set
// by a flag of the same name, which takes precedence.
type Config struct {
	// Jobs is the number of files reconstructed concurrently.
	Jobs int `yaml:"jobs"`
	// Format is one of text, json or cbor.
	Format string `yaml:"format"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// ExhaustiveLimit enables checking up to that many alternative subsets.
	ExhaustiveLimit int `yaml:"exhaustive_limit"`
	// Prime, in decimal, switches interpolation to ℤₚ.
	Prime string `yaml:"prime"`
	// Base is the base secrets are printed in by the text format.
	Base int `yaml:"base"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Jobs:     runtime.NumCPU(),
		Format:   FormatText,
		LogLevel: zerolog.WarnLevel.String(),
		Base:     10,
	}
}

// Load reads a YAML configuration from r on top of Default.
// Unknown keys are rejected.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

// LoadFile reads the YAML configuration at path on top of Default.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Load(bytes.NewReader(data))
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalid, c.Jobs)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatCBOR:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ExhaustiveLimit < 0 {
		return fmt.Errorf("%w: exhaustive_limit must not be negative, got %d", ErrInvalid, c.ExhaustiveLimit)
	}
	if _, err := c.Modulus(); err != nil {
		return err
	}
	if c.Base < arith.MinBase || c.Base > arith.MaxBase {
		return fmt.Errorf("%w: base must be in [%d, %d], got %d", ErrInvalid, arith.MinBase, arith.MaxBase, c.Base)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return level, nil
}

// Modulus parses Prime, returning nil when it is unset.
// Primality is checked later, by the reconstruction.
func (c Config) Modulus() (*big.Int, error) {
	if c.Prime == "" {
		return nil, nil
	}
	p, ok := new(big.Int).SetString(c.Prime, 10)
	if !ok {
		return nil, fmt.Errorf("%w: prime %q is not a decimal integer", ErrInvalid, c.Prime)
	}
	return p, nil
}

// Marshal writes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
