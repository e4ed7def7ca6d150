package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"catalog/config"
	"catalog/internal/infra/auth"

	"github.com/pkg/errors"
)

// Issues an access token for local testing of the catalog write endpoints:
//
//	go run ./cmd/tokengen -business ACME -roles editor
func main() {
	businessID := flag.String("business", "", "Business the token acts for")
	roles := flag.String("roles", "editor", "Comma separated roles")
	flag.Parse()

	if err := run(*businessID, *roles); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(businessID, rawRoles string) error {
	if businessID == "" {
		return errors.New("-business is required")
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create token service")
	}

	var roles []string
	for _, role := range strings.Split(rawRoles, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}

	token, err := tokenSvc.GenerateAccessToken(businessID, roles)
	if err != nil {
		return err
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires in %s\n", tokenSvc.GetAccessTokenDuration())

	return nil
}
