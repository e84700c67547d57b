package config

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/simbaid-sync/models"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DeviceID is the subject of the device JWT.
	DeviceID string
	// TokenSignKey signs device JWTs sent to the remote.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of device JWTs.
	TokenIssuer string
	// TokenDuration is the lifetime of a device JWT.
	TokenDuration time.Duration
	// PayloadPassphrase enables sealing of queued payloads when non-empty.
	PayloadPassphrase string
}

// ClientAdapter holds the remote endpoints used by the client transport
// layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote delivery API.
	HTTPAddress string
	// GRPCAddress is the remote gRPC health endpoint.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Prober selects the reachability check.
	Prober string
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// DSN is the path of the local queue file.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Driver is the queue backend: sqlite or bolt.
	Driver string
	// DB holds local database settings.
	DB ClientDB
}

// ClientServer holds the local status API settings.
type ClientServer struct {
	// HTTPAddress is the listen address of the local status API. Empty
	// disables the API.
	HTTPAddress string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncSchedule is the cron schedule of periodic sync passes.
	SyncSchedule string
	// ProbeInterval is how often reachability is checked.
	ProbeInterval time.Duration
	// DeliveryTimeout bounds a single delivery attempt.
	DeliveryTimeout time.Duration
	// MaxRetries is the retry budget of a queue item.
	MaxRetries int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Server  ClientServer
	Workers ClientWorkers
	UI      UI
	Log     Log
}

// ClientDefaults returns the built-in client configuration layer.
func ClientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "simbaid-sync",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			Driver: StorageDriverSQLite,
			DB:     DB{DSN: "simbaid-sync.db"},
		},
		Server: Server{
			HTTPAddress: "localhost:8081",
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
			Prober:         ProberHTTP,
		},
		Workers: Workers{
			SyncSchedule:    "@every 5m",
			ProbeInterval:   10 * time.Second,
			DeliveryTimeout: 15 * time.Second,
			MaxRetries:      models.MaxRetries,
		},
		UI:  UI{Mode: UIModeAuto},
		Log: Log{Level: "debug"},
	}
}

// GetClientConfig builds and validates a client-specific config view from
// the process arguments and environment.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig is [GetClientConfig] with explicit arguments.
func LoadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(ClientDefaults(), args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceID:          cfg.App.DeviceID,
			TokenSignKey:      cfg.App.TokenSignKey,
			TokenIssuer:       cfg.App.TokenIssuer,
			TokenDuration:     cfg.App.TokenDuration,
			PayloadPassphrase: cfg.App.PayloadPassphrase,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Prober:         cfg.Adapter.Prober,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			DB:     ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Server: ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
		Workers: ClientWorkers{
			SyncSchedule:    cfg.Workers.SyncSchedule,
			ProbeInterval:   cfg.Workers.ProbeInterval,
			DeliveryTimeout: cfg.Workers.DeliveryTimeout,
			MaxRetries:      cfg.Workers.MaxRetries,
		},
		UI:  cfg.UI,
		Log: cfg.Log,
	}
}
