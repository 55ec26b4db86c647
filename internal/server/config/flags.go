package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/fuelcost/internal/flagx"
)

// parseFlags overlays command-line flags onto config.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN, or "memory"
//	-s string   bearer token HMAC secret; empty disables auth
//	-l string   log level
//	-t int      shutdown timeout, seconds
//	-r uint     database connect attempts at startup
//	-o int      statement timeout, milliseconds
//	-p int      default page size
//	-m int      maximum page size
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-l", "-t", "-r", "-o", "-p", "-m"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.UintVar(&config.DBConnectAttempts, "r", config.DBConnectAttempts, "database connect attempts")
	statementTimeout := fs.Int64("o", config.StatementTimeout.Milliseconds(), "statement timeout (in milliseconds)")
	fs.IntVar(&config.DefaultPageSize, "p", config.DefaultPageSize, "default page size")
	fs.IntVar(&config.MaxPageSize, "m", config.MaxPageSize, "maximum page size")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
	config.StatementTimeout = time.Duration(*statementTimeout) * time.Millisecond
	return nil
}
