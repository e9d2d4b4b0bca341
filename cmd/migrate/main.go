package main

import (
	"github.com/sirupsen/logrus"

	"booking_system/internal/config"         // Custom import path (Config)
	"booking_system/internal/store/sqlstore" // Relational backend schema
)

// Main entry point for migration. Only the relational backend has a schema
// to manage; MongoDB collections need none.
func main() {
	cfg := config.LoadConfig() // Load configuration

	if err := sqlstore.Migrate(cfg.DSN()); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
