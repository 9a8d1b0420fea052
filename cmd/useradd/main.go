// Command useradd provisions a back-office user so the first login is possible.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/wholesale_payments/internal/core/services"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/SscSPs/wholesale_payments/internal/platform/config"
	"github.com/SscSPs/wholesale_payments/internal/repositories/database/pgsql"
	"github.com/SscSPs/wholesale_payments/pkg/database"
)

func main() {
	email := flag.String("email", "", "user email (login name)")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "initial password, at least 8 characters")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	auth := services.NewAuthService(cfg, repos.UserRepo)

	user, err := auth.CreateUser(ctx, dto.CreateUserRequest{
		Email:    *email,
		Name:     *name,
		Password: *password,
	}, "")
	if err != nil {
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(user.UserID)
}
