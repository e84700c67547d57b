// Package config provides configuration loading, merging, and validation
// facilities for the sync client and the reference delivery server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults ([ClientDefaults], [ServerDefaults])
//  2. Config file in JSON, YAML or TOML (-c / -config / CONFIG)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetServerConfig].
package config
