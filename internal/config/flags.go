package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress is a listen address flag value. Host may be empty (all
// interfaces), "localhost" or an IP literal; IPv6 needs brackets.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags from os.Args.
//
// Flags:
//
//	-a, -address       HTTP listen address [host]:port
//	-grpc-address      gRPC health listen address [host]:port
//	-d                 database DSN
//	-c, -config        JSON config file
//	-token-sign-key    session token HMAC key
//	-token-issuer      session token "iss"
//	-token-audience    session token "aud"
//	-token-duration    session lifetime, e.g. 168h
//	-request-timeout   per-request timeout, e.g. 15s
//	-shutdown-timeout  graceful shutdown timeout
//	-hash-key          entry write integrity key
//	-version           version reported by /api/version
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var (
		cfg                  StructuredConfig
		httpAddr, grpcAddr   NetAddress
		requestTimeout       time.Duration
		shutdownTimeout      time.Duration
		tokenDuration        time.Duration
		tokenIssuer, version string
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Var(&httpAddr, "a", "HTTP listen address [host]:port")
	fs.Var(&httpAddr, "address", "HTTP listen address [host]:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC health listen address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "session token issuer")
	fs.StringVar(&cfg.App.TokenAudience, "token-audience", "", "session token audience")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "session lifetime, e.g. 168h")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "per-request timeout, e.g. 15s")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "entry write integrity key")
	fs.StringVar(&version, "version", "", "version reported by /api/version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.App.TokenIssuer = tokenIssuer
	cfg.App.TokenDuration = tokenDuration
	cfg.App.Version = version
	cfg.Server = Server{
		HTTPAddress:     httpAddr.String(),
		GRPCAddress:     grpcAddr.String(),
		RequestTimeout:  requestTimeout,
		ShutdownTimeout: shutdownTimeout,
	}

	return &cfg, nil
}

// String returns host:port, or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements [flag.Value].
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1..65535", ErrInvalidAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", ErrInvalidAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}
