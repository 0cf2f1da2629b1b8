package view

import "github.com/dshills/tabletop/internal/logging"

type registryOptions struct {
	items  []MenuItem
	logger *logging.Logger
}

// RegistryOption configures NewRegistry.
type RegistryOption func(*registryOptions)

// WithMenuItems replaces the default main menu entries.
func WithMenuItems(items []MenuItem) RegistryOption {
	return func(o *registryOptions) {
		o.items = items
	}
}

// WithLogger sets the parent logger; each view gets a component child.
func WithLogger(l *logging.Logger) RegistryOption {
	return func(o *registryOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
