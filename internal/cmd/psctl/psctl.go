// Package psctl parses configuration and routes product search subcommands.
package psctl

import (
	"context"
	"flag"
	"strings"

	entrypoint "github.com/visionops/psctl/internal/platform/cmd"
	apperrors "github.com/visionops/psctl/internal/platform/errors"
	"github.com/visionops/psctl/internal/productsearch"
)

// Config holds psctl configuration.
type Config struct {
	ProjectID string `env:"PROJECT_ID"`
	Region    string `env:"REGION_NAME"`
	Endpoint  string `env:"PSCTL_VISION_ENDPOINT"`
}

// ParseConfig parses environment and flags into Config. The returned slice
// holds the remaining positional arguments: the subcommand and its params.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, []string, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, nil, err
	}
	fs.StringVar(&cfg.ProjectID, "project", cfg.ProjectID, "project id (default: PROJECT_ID)")
	fs.StringVar(&cfg.Region, "region", cfg.Region, "compute region (default: REGION_NAME)")
	fs.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "API endpoint override (default: PSCTL_VISION_ENDPOINT)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate reports configuration errors before any client is constructed.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return apperrors.New(apperrors.CodeConfigProjectMissing, "project id is required (set PROJECT_ID or -project)")
	}
	if strings.TrimSpace(c.Region) == "" {
		return apperrors.New(apperrors.CodeConfigRegionMissing, "compute region is required (set REGION_NAME or -region)")
	}
	return nil
}

// Location returns the resource location scoping all commands.
func (c Config) Location() productsearch.Location {
	return productsearch.Location{ProjectID: c.ProjectID, Region: c.Region}
}

// ClientFactory builds the remote capability set. Swapped in tests.
type ClientFactory func(ctx context.Context, cfg Config) (productsearch.API, error)

// DefaultClientFactory dials the live product search API.
func DefaultClientFactory(ctx context.Context, cfg Config) (productsearch.API, error) {
	return productsearch.NewClient(ctx, productsearch.Options{Endpoint: cfg.Endpoint})
}
