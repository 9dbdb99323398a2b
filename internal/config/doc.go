// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (.json, .yaml or .yml)
//
// The main entry points are [GetServerConfig] for the reference record store
// and [GetClientConfig] for the sync client.
package config
