// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by withDefaults to fields left empty by every source.
const (
	DefaultVersion             = "dev"
	DefaultLogLevel            = "debug"
	DefaultViewingKeyIssuer    = "shielded-nft"
	DefaultViewingKeyDuration  = 24 * time.Hour
	DefaultLockMaturity        = 5
	DefaultEpochDuration       = time.Hour
	DefaultHTTPAddress         = "localhost:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultAdapterTransport    = TransportHTTP
	DefaultAdapterHTTPAddress  = "http://localhost:8080"
	DefaultAdapterTimeout      = 15 * time.Second
	TransportHTTP              = "http"
	TransportGRPC              = "grpc"
	minViewingKeySignKeyLength = 16
)

// withDefaults fills every unset field that has a documented default.
func (cfg *StructuredConfig) withDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.ViewingKeyIssuer == "" {
		cfg.App.ViewingKeyIssuer = DefaultViewingKeyIssuer
	}
	if cfg.App.ViewingKeyDuration == 0 {
		cfg.App.ViewingKeyDuration = DefaultViewingKeyDuration
	}
	if cfg.App.DefaultLockMaturity == 0 {
		cfg.App.DefaultLockMaturity = DefaultLockMaturity
	}
	if cfg.App.EpochDuration == 0 {
		cfg.App.EpochDuration = DefaultEpochDuration
	}
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	cfg.Adapter.withDefaults()
}

func (a *Adapter) withDefaults() {
	if a.Transport == "" {
		a.Transport = DefaultAdapterTransport
	}
	if a.HTTPAddress == "" {
		a.HTTPAddress = DefaultAdapterHTTPAddress
	}
	if a.RequestTimeout == 0 {
		a.RequestTimeout = DefaultAdapterTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.ViewingKeySignKey) < minViewingKeySignKeyLength {
		return fmt.Errorf("%w: viewing key sign key must be at least %d bytes",
			ErrInvalidAppConfigs, minViewingKeySignKeyLength)
	}
	if cfg.App.ViewingKeyDuration < 0 || cfg.App.EpochDuration < 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidAppConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (a *Adapter) validate() error {
	switch a.Transport {
	case TransportHTTP:
		if a.HTTPAddress == "" {
			return fmt.Errorf("%w: http address is required", ErrInvalidAdapterConfigs)
		}
	case TransportGRPC:
		if a.GRPCAddress == "" {
			return fmt.Errorf("%w: grpc address is required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidAdapterConfigs, a.Transport)
	}

	if a.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
