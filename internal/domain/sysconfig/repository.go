package sysconfig

import "context"

type Repository interface {
	// Get returns the singleton, lazily creating it with defaults on first
	// read.
	Get(ctx context.Context) (*Config, error)
	Update(ctx context.Context, c *Config) error
}
