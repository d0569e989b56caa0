package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/internal/appmanager"

	"github.com/jackc/pgx/v5/pgxpool"
)

func connString() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"), os.Getenv("DB_NAME"),
	)
}

// verifyDB opens a plain database/sql handle and pings it so a bad DSN fails
// the boot before any service starts listening.
func verifyDB() error {
	db, err := sql.Open("postgres", connString())
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Ping()
}

func main() {
	// Load .env for local dev (ignored in container deploys)
	_ = godotenv.Load("../.env")

	if err := verifyDB(); err != nil {
		log.Fatal("failed to connect to DB:", err)
	}

	pool, err := pgxpool.New(context.Background(), connString())
	if err != nil {
		log.Fatal("failed to create pgx pool:", err)
	}
	defer pool.Close()
	appmanager.SetPgxPool(pool)

	manager := appmanager.NewAppManager()

	// Load service configs from YAML
	servicesCfg, err := appmanager.LoadServiceSequence("../services.yaml")
	if err != nil {
		log.Fatal("failed to load service sequence:", err)
	}

	manager.AutoRegisterServices(servicesCfg)

	if err := manager.StartAll(); err != nil {
		log.Fatal("failed to start:", err)
	}

	// Graceful shutdown handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	if err := manager.StopAll(); err != nil {
		log.Fatal("failed to stop:", err)
	}
}
