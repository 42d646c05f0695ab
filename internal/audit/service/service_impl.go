package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/lucas-b-santos/invoice-dashboard/internal/audit/domain"
	obsctx "github.com/lucas-b-santos/invoice-dashboard/internal/observability/context"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func NewService(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("audit.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) AuditLog(ctx context.Context, action, targetType, targetID string, metadata map[string]any) error {
	action = strings.TrimSpace(action)
	if action == "" {
		return nil
	}

	entry := &domain.AuditLog{
		ID:         s.genID.Generate(),
		ActorType:  string(domain.ActorTypeSystem),
		Action:     action,
		TargetType: strings.TrimSpace(targetType),
		Metadata:   datatypes.JSONMap{},
	}
	if userID := obsctx.UserIDFromContext(ctx); userID != "" {
		entry.ActorType = string(domain.ActorTypeUser)
		entry.ActorID = &userID
	}
	if targetID = strings.TrimSpace(targetID); targetID != "" {
		entry.TargetID = &targetID
	}
	for key, value := range metadata {
		if strings.TrimSpace(key) == "" {
			continue
		}
		entry.Metadata[key] = value
	}

	if err := s.repo.Insert(ctx, s.db, entry); err != nil {
		s.log.Warn("audit log insert failed",
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}
	return nil
}
