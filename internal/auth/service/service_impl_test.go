package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/lucas-b-santos/invoice-dashboard/internal/auth/domain"
	"github.com/lucas-b-santos/invoice-dashboard/internal/auth/password"
	"github.com/lucas-b-santos/invoice-dashboard/internal/auth/repository"
	"github.com/lucas-b-santos/invoice-dashboard/internal/clock"
	"github.com/lucas-b-santos/invoice-dashboard/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var authTestNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestSignInOpensSession(t *testing.T) {
	db, svc, node := setupAuthTest(t)
	insertUser(t, db, node, "ada@example.com", "s3cret")

	result, err := svc.SignIn(context.Background(), domain.Credentials{
		Email:    "ada@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a session token")
	}
	if !result.ExpiresAt.Equal(authTestNow.Add(time.Hour)) {
		t.Fatalf("unexpected expiry: %s", result.ExpiresAt)
	}

	user, err := svc.Lookup(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	db, svc, node := setupAuthTest(t)
	insertUser(t, db, node, "grace@example.com", "correct")

	_, err := svc.SignIn(context.Background(), domain.Credentials{
		Email:    "grace@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	_, svc, _ := setupAuthTest(t)

	_, err := svc.SignIn(context.Background(), domain.Credentials{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestSignInEmptyCredentials(t *testing.T) {
	_, svc, _ := setupAuthTest(t)

	_, err := svc.SignIn(context.Background(), domain.Credentials{})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLookupUnknownToken(t *testing.T) {
	_, svc, _ := setupAuthTest(t)

	_, err := svc.Lookup(context.Background(), "deadbeef")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session not found, got %v", err)
	}
}

func TestSignOutInvalidatesSession(t *testing.T) {
	db, svc, node := setupAuthTest(t)
	insertUser(t, db, node, "alan@example.com", "enigma")

	result, err := svc.SignIn(context.Background(), domain.Credentials{
		Email:    "alan@example.com",
		Password: "enigma",
	})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	if err := svc.SignOut(context.Background(), result.Token); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := svc.Lookup(context.Background(), result.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session not found after sign out, got %v", err)
	}
}

func TestLookupExpiredSession(t *testing.T) {
	db, _, node := setupAuthTest(t)
	user := insertUser(t, db, node, "edsger@example.com", "goto")

	session := domain.Session{
		ID:        node.Generate(),
		UserID:    user.ID,
		TokenHash: "2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae",
		ExpiresAt: authTestNow.Add(-time.Minute),
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("insert session: %v", err)
	}

	svc := newAuthService(t, db, node)
	// "foo" hashes to the stored token hash.
	_, err := svc.Lookup(context.Background(), "foo")
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected session expired, got %v", err)
	}
}

func setupAuthTest(t *testing.T) (*gorm.DB, domain.Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	).Error; err != nil {
		t.Fatalf("create users: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS sessions (
			id BIGINT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			token_hash TEXT NOT NULL UNIQUE,
			expires_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	).Error; err != nil {
		t.Fatalf("create sessions: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}
	return db, newAuthService(t, db, node), node
}

func newAuthService(t *testing.T, db *gorm.DB, node *snowflake.Node) domain.Service {
	t.Helper()
	return NewService(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.Fixed(authTestNow),
		Repo:  repository.Provide(),
		Cfg:   config.Config{SessionTTL: time.Hour},
	})
}

func insertUser(t *testing.T, db *gorm.DB, node *snowflake.Node, email, plaintext string) domain.User {
	t.Helper()
	hashed, err := password.Hash(plaintext)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := domain.User{
		ID:           node.Generate(),
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return user
}
