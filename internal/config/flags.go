package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a record store address in format [host]:[port]
//	-d database DSN
//	-c/-config config file path (.json, .yaml, .yml)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-restricted comma separated restricted account ids
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-batch-size largest accepted modify batch
//	-retry-after pacing hint for transient failures
//	-token account token used by the client
//	-record-type synchronized record type
//	-zone sync zone name
//	-page-size changes per fetch page
//	-retry-delay default delay for throttling errors
//	-remote-concurrency in-flight remote operations
//	-sync-interval periodic sync interval
//	-reconnect-delay notification listener redial delay
//	-log-level zerolog level
//	-log-file client log file
//	-import bookmarks file uploaded on start
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address           NetAddress
		databaseDSN       string
		configPath        string
		tokenSignKey      string
		tokenIssuer       string
		tokenDuration     time.Duration
		restricted        string
		requestTimeout    time.Duration
		maxBatchSize      int
		retryAfter        time.Duration
		accountToken      string
		recordType        string
		zone              string
		pageSize          int
		retryDelay        time.Duration
		remoteConcurrency int
		syncInterval      time.Duration
		reconnectDelay    time.Duration
		logLevel          string
		logFile           string
		importFile        string
	)

	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&restricted, "restricted", "", "Comma separated restricted account ids")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&maxBatchSize, "max-batch-size", 0, "Largest accepted modify batch")
	fs.DurationVar(&retryAfter, "retry-after", 0, "Retry hint for transient failures")
	fs.StringVar(&accountToken, "token", "", "Account token")
	fs.StringVar(&recordType, "record-type", "", "Synchronized record type")
	fs.StringVar(&zone, "zone", "", "Sync zone name")
	fs.IntVar(&pageSize, "page-size", 0, "Changes per fetch page")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Default delay for throttling errors")
	fs.IntVar(&remoteConcurrency, "remote-concurrency", 0, "In-flight remote operations")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval")
	fs.DurationVar(&reconnectDelay, "reconnect-delay", 0, "Notification listener redial delay")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&importFile, "import", "", "Bookmarks file uploaded on start")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var restrictedAccounts []string
	for _, account := range strings.Split(restricted, ",") {
		if account = strings.TrimSpace(account); account != "" {
			restrictedAccounts = append(restrictedAccounts, account)
		}
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenDuration:      tokenDuration,
			RestrictedAccounts: restrictedAccounts,
			LogLevel:           logLevel,
			LogFile:            logFile,
			ImportFile:         importFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
			MaxBatchSize:   maxBatchSize,
			RetryAfter:     retryAfter,
		},
		Adapter: Adapter{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
			Token:          accountToken,
		},
		Sync: Sync{
			RecordType:        recordType,
			Zone:              zone,
			PageSize:          pageSize,
			DefaultRetryDelay: retryDelay,
			RemoteConcurrency: remoteConcurrency,
		},
		Workers: Workers{
			SyncInterval:   syncInterval,
			ReconnectDelay: reconnectDelay,
		},
		ConfigFilePath: configPath,
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
