package geom

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunable tolerances and pool sizes, typically loaded
// from a TOML file:
//
//	flatten_tolerance = 0.05
//	empty_epsilon = 1e-9
//	pool_capacity = 32
//	fill_rule = "evenodd"
type Config struct {
	// FlattenTolerance is the maximum chord error when curves are
	// flattened for Contains, Length and Flatten.
	FlattenTolerance float64 `toml:"flatten_tolerance"`

	// EmptyEpsilon is the area under which Intersect treats its result
	// as empty.
	EmptyEpsilon float64 `toml:"empty_epsilon"`

	// PoolCapacity bounds how many released objects each pool keeps.
	PoolCapacity int `toml:"pool_capacity"`

	// FillRule is the rule new paths start with.
	FillRule FillRule `toml:"fill_rule"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		FlattenTolerance: defaultTolerance,
		EmptyEpsilon:     defaultEmptyEpsilon,
		PoolCapacity:     defaultPoolCapacity,
		FillRule:         FillRuleNonZero,
	}
}

// LoadConfig decodes TOML from r on top of DefaultConfig. Unknown keys
// are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("geom: config: %w: %s", ErrInvalidArgument, strict.String())
		}
		return Config{}, fmt.Errorf("geom: config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a TOML config file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("geom: config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	var errs []error
	if !(c.FlattenTolerance > 0) {
		errs = append(errs, fmt.Errorf("flatten_tolerance must be positive, got %g", c.FlattenTolerance))
	}
	if !(c.EmptyEpsilon >= 0) {
		errs = append(errs, fmt.Errorf("empty_epsilon must not be negative, got %g", c.EmptyEpsilon))
	}
	if c.PoolCapacity < 0 {
		errs = append(errs, fmt.Errorf("pool_capacity must not be negative, got %d", c.PoolCapacity))
	}
	if _, err := c.FillRule.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("geom: config: %w: %w", ErrInvalidArgument, errors.Join(errs...))
	}
	return nil
}

// PathOptions converts the config into options for NewPath.
func (c Config) PathOptions() []PathOption {
	return []PathOption{
		WithFillRule(c.FillRule),
		WithTolerance(c.FlattenTolerance),
		WithEmptyEpsilon(c.EmptyEpsilon),
	}
}

// PoolOptions converts the config into options for NewPathPool and the
// rectangle pools.
func (c Config) PoolOptions() []PoolOption {
	return []PoolOption{
		WithPoolCapacity(c.PoolCapacity),
		WithPathOptions(c.PathOptions()...),
	}
}

// Marshal encodes the config as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
