package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"booking_system/internal/config"
	"booking_system/internal/domain"
	"booking_system/internal/password"
	"booking_system/internal/store"
	"booking_system/internal/store/mongostore"
	"booking_system/internal/store/sqlstore"
)

// Seeds one admin account through the configured store. Admins have no
// registration route; this tool is the only way they are created.
func main() {
	username := flag.String("username", "admin", "admin username")
	pass := flag.String("password", "", "admin password (required)")
	fullName := flag.String("full-name", "", "admin display name")
	flag.Parse()

	if *pass == "" {
		logrus.Fatal("missing -password")
	}

	cfg := config.LoadConfig()
	ctx := context.Background()

	var st store.Store
	var err error
	switch cfg.StoreBackend {
	case "mysql":
		st, err = sqlstore.Open(cfg.DSN(), sqlstore.Options{})
	default:
		st, err = mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	}
	if err != nil {
		logrus.Fatalf("failed to connect to store: %v", err)
	}
	defer st.Close(ctx)

	// Refuse to duplicate an existing username
	if _, err := st.FindAdminByUsername(ctx, *username); err == nil {
		fmt.Println("admin already exists with username:", *username)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.Fatalf("failed to query admins: %v", err)
	}

	// The stored form follows the deployment policy: hashed, or the legacy
	// plaintext the coerced-equality login still compares against.
	var stored any = *pass
	if cfg.AdminAuthPolicy == "bcrypt" {
		h, err := password.Hash(*pass)
		if err != nil {
			logrus.Fatalf("failed to hash password: %v", err)
		}
		stored = h
	}

	admin := domain.Admin{
		Username: *username,
		Password: stored,
		FullName: *fullName,
		Role:     "admin",
	}
	if err := st.CreateAdmin(ctx, &admin); err != nil {
		logrus.Fatalf("failed to insert admin: %v", err)
	}
	fmt.Println("admin created:", *username)
}
