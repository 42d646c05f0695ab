package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/lucas-b-santos/invoice-dashboard/internal/audit/domain"
	"github.com/lucas-b-santos/invoice-dashboard/internal/audit/repository"
	obsctx "github.com/lucas-b-santos/invoice-dashboard/internal/observability/context"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestAuditLogRecordsActorFromContext(t *testing.T) {
	db, svc := setupAuditTest(t)

	ctx := obsctx.WithUserID(context.Background(), "42")
	if err := svc.AuditLog(ctx, "invoice.create", "invoice", "7", map[string]any{"amount": 4999}); err != nil {
		t.Fatalf("audit log: %v", err)
	}

	entries, err := repository.Provide().List(context.Background(), db, domain.ListFilter{Action: "invoice.create"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.ActorType != string(domain.ActorTypeUser) || entry.ActorID == nil || *entry.ActorID != "42" {
		t.Fatalf("unexpected actor: %+v", entry)
	}
	if entry.TargetType != "invoice" || entry.TargetID == nil || *entry.TargetID != "7" {
		t.Fatalf("unexpected target: %+v", entry)
	}
}

func TestAuditLogWithoutActorIsSystem(t *testing.T) {
	db, svc := setupAuditTest(t)

	if err := svc.AuditLog(context.Background(), "auth.sign_in", "user", "", nil); err != nil {
		t.Fatalf("audit log: %v", err)
	}

	entries, err := repository.Provide().List(context.Background(), db, domain.ListFilter{Action: "auth.sign_in"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ActorType != string(domain.ActorTypeSystem) || entries[0].ActorID != nil {
		t.Fatalf("unexpected actor: %+v", entries[0])
	}
	if entries[0].TargetID != nil {
		t.Fatalf("expected no target id, got %v", *entries[0].TargetID)
	}
}

func TestAuditLogIgnoresEmptyAction(t *testing.T) {
	db, svc := setupAuditTest(t)

	if err := svc.AuditLog(context.Background(), "  ", "invoice", "7", nil); err != nil {
		t.Fatalf("audit log: %v", err)
	}

	entries, err := repository.Provide().List(context.Background(), db, domain.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func setupAuditTest(t *testing.T) (*gorm.DB, domain.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS audit_logs (
			id BIGINT PRIMARY KEY,
			actor_type TEXT NOT NULL,
			actor_id TEXT,
			action TEXT NOT NULL,
			target_type TEXT NOT NULL,
			target_id TEXT,
			metadata TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	).Error; err != nil {
		t.Fatalf("create audit_logs: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}

	svc := NewService(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return db, svc
}
