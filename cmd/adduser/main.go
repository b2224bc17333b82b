// Command adduser creates or activates catalog accounts. Registration is
// deliberately not exposed over HTTP; operators manage accounts with this
// tool instead.
//
//	go run ./cmd/adduser -username alice -password secret123 -activate
//	go run ./cmd/adduser -activate -username alice
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cinelog/cinelog/internal/app"
	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/logger"
	"github.com/cinelog/cinelog/internal/repository"
	"github.com/cinelog/cinelog/internal/validation"
)

func main() {
	username := flag.String("username", "", "username (required)")
	password := flag.String("password", "", "password (required when creating)")
	email := flag.String("email", "", "email address (optional)")
	fullName := flag.String("name", "", "full name (optional)")
	activate := flag.Bool("activate", false, "clear the disabled flag")
	flag.Parse()

	if *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), "")

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	// Activation-only run for an existing account.
	if *password == "" {
		if !*activate {
			flag.Usage()
			os.Exit(2)
		}

		user, err := a.UserService.Activate(*username)
		if err != nil {
			slog.Error("failed to activate user", "error", err, "username", *username)
			os.Exit(1)
		}

		fmt.Printf("activated user %s (id %d)\n", user.Username, user.ID)
		return
	}

	err = validation.ValidatePassword(*password)
	if err != nil {
		slog.Error("password rejected", "error", err)
		os.Exit(1)
	}

	hash, err := a.AuthService.HashPassword(*password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	user, err := a.UserService.Create(*username, hash, optional(*email), optional(*fullName))
	if err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			slog.Error("username already taken", "username", *username)
			os.Exit(1)
		}
		slog.Error("failed to create user", "error", err)
		os.Exit(1)
	}

	if *activate {
		user, err = a.UserService.Activate(user.Username)
		if err != nil {
			slog.Error("failed to activate user", "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("created user %s (id %d, disabled=%v)\n", user.Username, user.ID, user.Disabled)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
