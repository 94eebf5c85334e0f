package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:port
//	-d database DSN
//	-redis redis address in format host:port
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-duration token duration (e.g., "1h", "30m")
//	-bcrypt-cost bcrypt work factor
//	-base-path path prefix of the API routes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level minimum log level
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var redisAddress string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenDuration time.Duration
	var bcryptCost int
	var basePath string
	var requestTimeout time.Duration
	var logLevel string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	flag.StringVar(&basePath, "base-path", "", "API base path (e.g., /api)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			BcryptCost:    bcryptCost,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			BasePath:       basePath,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// default address is applied later.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. It validates the port
// range, checks IP correctness unless host is empty or "localhost", and
// returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	if strings.Count(s, ":") != 1 {
		return errors.New("need address in a form `host:port`")
	}

	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return err
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within [1, 65535]")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
