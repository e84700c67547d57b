package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedConfigFormat is returned for config files whose extension
// is not .json, .yaml, .yml or .toml.
var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

// fileConfig mirrors [StructuredConfig] with the snake_case keys used in
// config files. The same keys are used for every format.
type fileConfig struct {
	App struct {
		DeviceID          string   `json:"device_id" yaml:"device_id" toml:"device_id"`
		TokenSignKey      string   `json:"token_sign_key" yaml:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer" yaml:"token_issuer" toml:"token_issuer"`
		TokenDuration     Duration `json:"token_duration" yaml:"token_duration" toml:"token_duration"`
		PayloadPassphrase string   `json:"payload_passphrase" yaml:"payload_passphrase" toml:"payload_passphrase"`
	} `json:"app" yaml:"app" toml:"app"`

	Storage struct {
		Driver string `json:"driver" yaml:"driver" toml:"driver"`
		DB     struct {
			DSN string `json:"dsn" yaml:"dsn" toml:"dsn"`
		} `json:"db" yaml:"db" toml:"db"`
	} `json:"storage" yaml:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
	} `json:"server" yaml:"server" toml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address" toml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
		Prober         string   `json:"prober" yaml:"prober" toml:"prober"`
	} `json:"adapter" yaml:"adapter" toml:"adapter"`

	Workers struct {
		SyncSchedule    string   `json:"sync_schedule" yaml:"sync_schedule" toml:"sync_schedule"`
		ProbeInterval   Duration `json:"probe_interval" yaml:"probe_interval" toml:"probe_interval"`
		DeliveryTimeout Duration `json:"delivery_timeout" yaml:"delivery_timeout" toml:"delivery_timeout"`
		MaxRetries      int      `json:"max_retries" yaml:"max_retries" toml:"max_retries"`
	} `json:"workers" yaml:"workers" toml:"workers"`

	UI struct {
		Mode string `json:"mode" yaml:"mode" toml:"mode"`
	} `json:"ui" yaml:"ui" toml:"ui"`

	Log struct {
		Level string `json:"level" yaml:"level" toml:"level"`
		File  string `json:"file" yaml:"file" toml:"file"`
	} `json:"log" yaml:"log" toml:"log"`
}

// parseFile reads the config file at path, choosing the decoder by the file
// extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s configs: %w", filepath.Ext(path), err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DeviceID:          fc.App.DeviceID,
			TokenSignKey:      fc.App.TokenSignKey,
			TokenIssuer:       fc.App.TokenIssuer,
			TokenDuration:     time.Duration(fc.App.TokenDuration),
			PayloadPassphrase: fc.App.PayloadPassphrase,
		},
		Storage: Storage{
			Driver: fc.Storage.Driver,
			DB:     DB{DSN: fc.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			GRPCAddress:    fc.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			Prober:         fc.Adapter.Prober,
		},
		Workers: Workers{
			SyncSchedule:    fc.Workers.SyncSchedule,
			ProbeInterval:   time.Duration(fc.Workers.ProbeInterval),
			DeliveryTimeout: time.Duration(fc.Workers.DeliveryTimeout),
			MaxRetries:      fc.Workers.MaxRetries,
		},
		UI:  UI{Mode: fc.UI.Mode},
		Log: Log{Level: fc.Log.Level, File: fc.Log.File},
	}
}

// Duration is a wrapper around time.Duration that decodes strings like
// "1h" or "30s" from JSON, YAML and TOML. Bare JSON numbers are read as
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalText implements encoding.TextUnmarshaler; go-toml uses it.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}
