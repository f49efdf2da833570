package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"booktracker/database"
	"booktracker/internal/config"
	"booktracker/internal/http-api/repository"
)

// Small operator tool: grants or revokes the admin flag for an existing user.
func main() {
	username := flag.String("username", "", "username to change")
	revoke := flag.Bool("revoke", false, "remove the admin flag instead of granting it")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "usage: set-admin -username <name> [-revoke]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.SetAdmin(context.Background(), *username, !*revoke); err != nil {
		log.Fatalf("could not update user %q: %v", *username, err)
	}

	if *revoke {
		fmt.Printf("User %s is no longer admin\n", *username)
	} else {
		fmt.Printf("User %s is now admin\n", *username)
	}
}
