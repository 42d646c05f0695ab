package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	InsertUser(ctx context.Context, db *gorm.DB, user *User) error
	InsertSession(ctx context.Context, db *gorm.DB, session *Session) error
	FindSessionByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*Session, error)
	DeleteSessionByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) error
	DeleteExpiredSessions(ctx context.Context, db *gorm.DB, before time.Time) error
	FindUserByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*User, error)
}

var ErrUserNotFound = errors.New("user_not_found")
