package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/sali72/expense-tracker/config"
	"github.com/sali72/expense-tracker/pkg/helpers"
)

// tokengen mints long-lived bearer tokens for manual API testing.
//
//	go run ./cmd/tokengen -user 5f6e8f9a-0b1c-4d2e-8f3a-9b4c5d6e7f80 -ttl 720h
func main() {
	userFlag := flag.String("user", "", "user UUID to mint a token for (required)")
	ttlFlag := flag.Duration("ttl", 720*time.Hour, "token lifetime")
	flag.Parse()

	if *userFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -user <uuid> [-ttl <duration>]")
		os.Exit(2)
	}

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid user id: %v\n", err)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	manager := helpers.NewJWTManager(cfg.JWTSecret, helpers.SigningMethodByName(cfg.JWTAlgorithm), cfg.TokenTTL)
	token, expiresAt, err := manager.IssueFor(userID, *ttlFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires: %s\n", expiresAt.UTC().Format(time.RFC3339))
}
