// Package config loads the YAML run configuration of the hcpath CLI and
// validates it with struct tags.
//
// A minimal file:
//
//	graph: data/web-google.txt.zst
//	hops: [4, 6, 8]
//	run:
//	  queries: [queries/web-google_4.query]
//	  answers: out/answers
//	  workers: 4
//
// Command-line flags override file values; Validate* runs after both are
// applied.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	// Graph is the path of the edge-list file (optionally .zst/.gz/.lz4).
	Graph string `yaml:"graph" validate:"required"`
	// Hops lists the hop bounds to run, each in [3, 64].
	Hops []int `yaml:"hops" validate:"required,min=1,dive,gte=3,lte=64"`

	Log LogConfig `yaml:"log"`

	// MetricsAddr, when set, serves Prometheus metrics on host:port.
	MetricsAddr string `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
	// Trace exports OpenTelemetry spans to stdout.
	Trace bool `yaml:"trace"`

	Run      RunConfig      `yaml:"run" validate:"-"`
	Generate GenerateConfig `yaml:"generate" validate:"-"`
}

// LogConfig selects log level and format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

// RunConfig configures `hcpath run`.
type RunConfig struct {
	// Queries lists query files; each is answered under every hop bound.
	Queries []string `yaml:"queries" validate:"required,min=1,dive,required"`
	// Answers is the directory for answer files; empty disables them.
	Answers string `yaml:"answers"`
	// Stats is the directory for statistics files; empty disables them.
	Stats string `yaml:"stats"`
	// RunLog is a CSV file that receives one timing line per query file.
	RunLog string `yaml:"runlog"`
	// Method labels run-log lines.
	Method            string `yaml:"method" validate:"required"`
	Workers           int    `yaml:"workers" validate:"gte=1,lte=1024"`
	Mode              string `yaml:"mode" validate:"oneof=exact upperbound"`
	OrderingThreshold int    `yaml:"ordering_threshold" validate:"gte=0"`
}

// GenerateConfig configures `hcpath genqueries`.
type GenerateConfig struct {
	Count int    `yaml:"count" validate:"gte=1"`
	Seed  int64  `yaml:"seed"`
	Out   string `yaml:"out" validate:"required"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "auto"},
		Run: RunConfig{
			Method:            "EVE",
			Workers:           1,
			Mode:              "exact",
			OrderingThreshold: 1024,
		},
		Generate: GenerateConfig{Count: 1000, Seed: 2022, Out: "."},
	}
}

// Load reads path over Default(). An empty path returns the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes YAML from r into cfg, keeping fields the document omits.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRun checks the shared fields plus the run section.
func (c *Config) ValidateRun() error {
	return check(c, &c.Run)
}

// ValidateGenerate checks the shared fields plus the generate section.
func (c *Config) ValidateGenerate() error {
	return check(c, &c.Generate)
}

// MaxHops returns the largest configured hop bound.
func (c *Config) MaxHops() int {
	if len(c.Hops) == 0 {
		return 0
	}
	return slices.Max(c.Hops)
}

func check(structs ...any) error {
	var msgs []string
	for _, s := range structs {
		err := validate.Struct(s)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, fe := range verrs {
			msgs = append(msgs, describe(fe))
		}
	}
	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "gte", "lte", "min":
		return fmt.Sprintf("%s violates %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
