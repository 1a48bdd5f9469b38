// Command mktoken mints a bearer token for the manual trigger endpoint,
// signed with API_TOKEN_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"quizreg/config"
	"quizreg/internal/adapters/auth"
)

func main() {
	var subject string
	var ttl time.Duration
	flag.StringVar(&subject, "subject", "operator", "token subject")
	flag.DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if cfg.APITokenSecret == "" {
		fmt.Fprintln(os.Stderr, "API_TOKEN_SECRET is not set")
		os.Exit(1)
	}

	token, err := auth.NewHS256Tokens(cfg.APITokenSecret).Issue(subject, ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to issue token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
