// Command tokengen issues a bearer token for the payment API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"simplepay/config"
	"simplepay/internal/service"
)

func main() {
	configPath := flag.String("config", os.Getenv("SPAY_CONFIG"), "path to the YAML config file")
	subject := flag.String("subject", "", "client the token is issued to")
	expiry := flag.Duration("expiry", 0, "token lifetime (default from jwt.expiry)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret is required")
		os.Exit(1)
	}
	if *expiry > 0 {
		cfg.JWT.Expiry = *expiry
	}

	tokens := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	token, expiresAt, err := tokens.Generate(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
}
