package config

import (
	"fmt"
	"os"
	"time"
)

// ServerApp holds the token settings the delivery server verifies device
// JWTs with.
type ServerApp struct {
	TokenSignKey string
	TokenIssuer  string
}

// ServerStorage holds the PostgreSQL connection settings.
type ServerStorage struct {
	DB DB
}

// ServerConfig is the configuration view of the reference delivery server.
type ServerConfig struct {
	App     ServerApp
	Storage ServerStorage
	Server  Server
	Log     Log
}

// ServerDefaults returns the built-in server configuration layer.
func ServerDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenIssuer: "simbaid-sync"},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
		},
		Log: Log{Level: "debug"},
	}
}

// GetServerConfig builds and validates the server config view from the
// process arguments and environment.
func GetServerConfig() (*ServerConfig, error) {
	return LoadServerConfig(os.Args[1:])
}

// LoadServerConfig is [GetServerConfig] with explicit arguments.
func LoadServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(ServerDefaults(), args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
		},
		Storage: ServerStorage{DB: cfg.Storage.DB},
		Server:  cfg.Server,
		Log:     cfg.Log,
	}

	return serverCfg, serverCfg.validate()
}
