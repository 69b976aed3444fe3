package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/coursehub/internal/flagx"
)

var serverFlags = []string{"-a", "-b", "-k", "-d", "-m", "-n", "-s", "-t", "-p", "-w", "-l", "-o", "-r", "-metrics", "-g"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3001")
//	-b string   API base path (e.g., "/api")
//	-k string   store: postgres, mongo or memory
//	-d string   PostgreSQL DSN
//	-m string   MongoDB URI
//	-n string   MongoDB database name
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-p string   password hasher: bcrypt or argon2
//	-w int      bcrypt cost
//	-l string   log level
//	-o string   allowed CORS origin
//	-r string   auth rate limit, e.g. "20-M"
//	-metrics    expose /metrics
//	-g int      graceful shutdown timeout, seconds
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.BasePath, "b", config.BasePath, "API base path")
	fs.StringVar(&config.StoreKind, "k", config.StoreKind, "store kind")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "MongoDB URI")
	fs.StringVar(&config.MongoDatabase, "n", config.MongoDatabase, "MongoDB database")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.StringVar(&config.PasswordHasher, "p", config.PasswordHasher, "password hasher")
	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.AllowedOrigin, "o", config.AllowedOrigin, "allowed CORS origin")
	fs.StringVar(&config.AuthRateLimit, "r", config.AuthRateLimit, "auth rate limit")
	fs.BoolVar(&config.MetricsEnabled, "metrics", config.MetricsEnabled, "expose /metrics")
	shutdown := fs.Int("g", int(config.ShutdownTimeout.Seconds()), "graceful shutdown timeout (in seconds)")

	if err := fs.Parse(flagx.FilterArgs(args, serverFlags)); err != nil {
		return err
	}

	// Minute/second flags are lossy, so only touch durations that were passed.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		case "g":
			config.ShutdownTimeout = time.Duration(*shutdown) * time.Second
		}
	})
	return nil
}
