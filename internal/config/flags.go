package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a local API / server address in format [host]:[port]
//	-grpc-address gRPC health server address in format [host]:[port]
//	-d database DSN (sqlite/bolt file or postgres URI)
//	-storage-driver client queue backend (sqlite, bolt)
//	-c/-config config file path (.json, .yaml, .yml, .toml)
//	-device-id device identifier
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-payload-passphrase passphrase sealing queued payloads
//	-request-timeout inbound request timeout (e.g., "30s")
//	-remote remote delivery API base URL
//	-remote-grpc remote gRPC health address
//	-remote-timeout outbound request timeout
//	-prober reachability prober (http, grpc, static)
//	-sync-schedule cron schedule of periodic sync passes
//	-probe-interval reachability probe interval
//	-delivery-timeout single delivery attempt timeout
//	-max-retries failed attempts before an item is reported failed
//	-ui client UI mode (auto, tui, headless)
//	-log-level log level
//	-log-file client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("simbaid-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Driver, "storage-driver", "", "Queue storage driver (sqlite, bolt)")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.DeviceID, "device-id", "", "Device identifier")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&cfg.App.PayloadPassphrase, "payload-passphrase", "", "Passphrase sealing queued payloads")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "remote", "", "Remote delivery API base URL")
	fs.StringVar(&cfg.Adapter.GRPCAddress, "remote-grpc", "", "Remote gRPC health address host:port")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "remote-timeout", 0, "Outbound request timeout")
	fs.StringVar(&cfg.Adapter.Prober, "prober", "", "Reachability prober (http, grpc, static)")
	fs.StringVar(&cfg.Workers.SyncSchedule, "sync-schedule", "", "Cron schedule of periodic sync passes")
	fs.DurationVar(&cfg.Workers.ProbeInterval, "probe-interval", 0, "Reachability probe interval")
	fs.DurationVar(&cfg.Workers.DeliveryTimeout, "delivery-timeout", 0, "Single delivery attempt timeout")
	fs.IntVar(&cfg.Workers.MaxRetries, "max-retries", 0, "Failed attempts before an item is reported failed")
	fs.StringVar(&cfg.UI.Mode, "ui", "", "UI mode (auto, tui, headless)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
