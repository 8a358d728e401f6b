package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server configuration flags from args (usually
// os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (empty for the in-memory registry)
//	-seal-key passphrase sealing shielded columns at rest
//	-c/-config json file path with configs
//	-viewing-key-sign-key viewing key signing key
//	-viewing-key-issuer viewing key issuer name
//	-viewing-key-duration viewing key lifetime (e.g., "24h")
//	-default-lock-maturity maturity in epochs applied on stake
//	-epoch-duration wall-clock length of one epoch (e.g., "1h")
//	-enforce-maturity reject unstake before maturity
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key security hash key
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var sealKey string
	var jsonConfigPath string
	var viewingKeySignKey string
	var viewingKeyIssuer string
	var viewingKeyDuration time.Duration
	var defaultLockMaturity uint64
	var epochDuration time.Duration
	var enforceMaturity bool
	var requestTimeout time.Duration
	var hashKey string
	var logLevel string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&sealKey, "seal-key", "", "Passphrase sealing shielded columns")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&viewingKeySignKey, "viewing-key-sign-key", "", "Viewing key signing key")
	fs.StringVar(&viewingKeyIssuer, "viewing-key-issuer", "", "Viewing key issuer")
	fs.DurationVar(&viewingKeyDuration, "viewing-key-duration", 0, "Viewing key duration (e.g., 24h)")
	fs.Uint64Var(&defaultLockMaturity, "default-lock-maturity", 0, "Default lock maturity in epochs")
	fs.DurationVar(&epochDuration, "epoch-duration", 0, "Epoch duration (e.g., 1h)")
	fs.BoolVar(&enforceMaturity, "enforce-maturity", false, "Reject unstake before maturity")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:            logLevel,
			ViewingKeySignKey:   viewingKeySignKey,
			ViewingKeyIssuer:    viewingKeyIssuer,
			ViewingKeyDuration:  viewingKeyDuration,
			DefaultLockMaturity: defaultLockMaturity,
			EpochDuration:       epochDuration,
			EnforceMaturity:     enforceMaturity,
			HashKey:             hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			SealKey: sealKey,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
