package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/clubsync/events-backend/internal/config"
	"github.com/clubsync/events-backend/internal/database"
	"github.com/clubsync/events-backend/internal/logger"
	"github.com/clubsync/events-backend/internal/model"
	"github.com/clubsync/events-backend/internal/password"
	"github.com/clubsync/events-backend/internal/repository"
	"github.com/clubsync/events-backend/internal/service"
)

// create-admin registers an admin account from the terminal. It runs the
// same pipeline as POST /register, so the password policy and username
// uniqueness apply here too.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	accountRepo := repository.NewAccountRepository(pool)
	authService := service.NewAuthService(cfg)
	accountService := service.NewAccountService(accountRepo, authService, log)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin Account ===")

	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	fmt.Println()

	_, err = accountService.Register(ctx, model.RoleAdmin, username, string(bytePassword))
	if err != nil {
		var policyErr *password.PolicyError
		switch {
		case errors.As(err, &policyErr):
			fmt.Printf("Error: %s\n", policyErr.Message)
		case errors.Is(err, service.ErrUsernameTaken):
			fmt.Println("Error: Username already exists")
		default:
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	fmt.Printf("Admin %q created successfully\n", username)
}
