package main

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"

	"travel-service/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("migration direction (up/down) is required")
	}

	cfg := config.InitConfig()

	mig, err := getConnection(&cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer mig.Close()

	switch os.Args[1] {
	case "up":
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("error running migrations: %v", err)
		}
		log.Println("database migrations completed successfully")
	case "down":
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("error rolling back migrations: %v", err)
		}
		log.Println("database migrations rolled back successfully")
	default:
		log.Fatal("invalid direction, use 'up' or 'down'")
	}
}

func getConnection(cfg *config.DatabaseConfig) (*migrate.Migrate, error) {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		net.JoinHostPort(cfg.Host, cfg.Port),
		cfg.Name,
		cfg.SSLMode,
	)

	mig, err := migrate.New("file://migrations", connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}
