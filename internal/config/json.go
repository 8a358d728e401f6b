package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version             string   `json:"version"`
		LogLevel            string   `json:"log_level"`
		ViewingKeySignKey   string   `json:"viewing_key_sign_key"`
		ViewingKeyIssuer    string   `json:"viewing_key_issuer"`
		ViewingKeyDuration  Duration `json:"viewing_key_duration"`
		DefaultLockMaturity uint64   `json:"default_lock_maturity"`
		EpochDuration       Duration `json:"epoch_duration"`
		EnforceMaturity     bool     `json:"enforce_maturity"`
		HashKey             string   `json:"hash_key"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		SealKey string `json:"seal_key"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Transport      string   `json:"transport"`
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:             jsonCfg.App.Version,
			LogLevel:            jsonCfg.App.LogLevel,
			ViewingKeySignKey:   jsonCfg.App.ViewingKeySignKey,
			ViewingKeyIssuer:    jsonCfg.App.ViewingKeyIssuer,
			ViewingKeyDuration:  time.Duration(jsonCfg.App.ViewingKeyDuration),
			DefaultLockMaturity: jsonCfg.App.DefaultLockMaturity,
			EpochDuration:       time.Duration(jsonCfg.App.EpochDuration),
			EnforceMaturity:     jsonCfg.App.EnforceMaturity,
			HashKey:             jsonCfg.App.HashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			SealKey: jsonCfg.Storage.SealKey,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Transport:      jsonCfg.Adapter.Transport,
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GRPCAddress:    jsonCfg.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
