package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"profilemap/config"
	"profilemap/internal/infra/auth"

	"github.com/pkg/errors"
)

// admintoken mints an admin capability token signed with admin.tokenSecret.
// It stands in for the external auth collaborator during development.
func main() {
	subject := flag.String("subject", "admin", "Subject (sub claim) of the token")
	ttl := flag.Duration("ttl", 0, "Token lifetime; defaults to admin.tokenTtl")
	flag.Parse()

	token, expiresAt, err := mint(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Token for %q expires at %s\n", *subject, expiresAt.Format(time.RFC3339))
	fmt.Println(token)
}

func mint(subject string, ttl time.Duration) (string, time.Time, error) {
	cfg, err := config.New()
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "load config")
	}
	if ttl > 0 {
		cfg.Admin.TokenTTL = ttl
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", time.Time{}, err
	}

	token, err := tokenSvc.GenerateAdminToken(subject)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, time.Now().Add(tokenSvc.TokenTTL()), nil
}
