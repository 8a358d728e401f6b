package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string `env:"APP_HASH_KEY"`
}

// GetClientConfig builds and validates the client configuration from the
// environment and the leading flags of args. Parsing stops at the first
// non-flag argument; the rest (the subcommand and its arguments) is
// returned unchanged.
//
// Flags:
//
//	-server HTTP base URL (e.g. "http://localhost:8080")
//	-grpc-server gRPC address host:port
//	-transport "http" or "grpc"
//	-timeout request timeout (e.g. "15s")
//	-hash-key security hash key
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	cfg.Adapter.withDefaults()
	if err := cfg.Adapter.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, rest, nil
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	var (
		httpAddress string
		grpcAddress string
		transport   string
		timeout     time.Duration
		hashKey     string
	)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&httpAddress, "server", "", "HTTP base URL")
	fs.StringVar(&grpcAddress, "grpc-server", "", "gRPC address host:port")
	fs.StringVar(&transport, "transport", "", "Transport: http or grpc")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &ClientConfig{
		Adapter: Adapter{
			Transport:      transport,
			HTTPAddress:    httpAddress,
			GRPCAddress:    grpcAddress,
			RequestTimeout: timeout,
		},
		HashKey: hashKey,
	}, fs.Args(), nil
}
