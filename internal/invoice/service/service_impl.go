package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/lucas-b-santos/invoice-dashboard/internal/audit/domain"
	"github.com/lucas-b-santos/invoice-dashboard/internal/clock"
	"github.com/lucas-b-santos/invoice-dashboard/internal/invoice/domain"
	"github.com/lucas-b-santos/invoice-dashboard/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 6
	maxPageSize     = 100
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	AuditSvc auditdomain.Service `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	auditSvc auditdomain.Service
}

func NewService(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		auditSvc: p.AuditSvc,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListInvoicesRequest) (domain.ListInvoicesResponse, error) {
	page := req.Pagination.Normalize(defaultPageSize, maxPageSize)

	rows, total, err := s.repo.Search(ctx, s.db, req.Query, page)
	if err != nil {
		return domain.ListInvoicesResponse{}, err
	}
	if rows == nil {
		rows = []domain.InvoiceRow{}
	}
	return domain.ListInvoicesResponse{
		PageInfo: pagination.NewPageInfo(page, total),
		Invoices: rows,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidInvoiceID
	}
	return s.repo.FindByID(ctx, s.db, parsed)
}

// Create validates the submitted form, stamps the invoice date server-side
// and inserts the row. A nil return means success.
func (s *Service) Create(ctx context.Context, values domain.FormValues) *domain.FormState {
	parsed, fieldErrors := domain.ParseForm(values)
	if len(fieldErrors) > 0 {
		return &domain.FormState{
			Errors:  fieldErrors,
			Message: "Missing Fields. Failed to Create Invoice.",
			Data:    &values,
		}
	}

	now := s.clock.Now()
	invoice := &domain.Invoice{
		ID:         s.genID.Generate(),
		CustomerID: parsed.CustomerID,
		Amount:     parsed.AmountCents,
		Status:     parsed.Status,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	if err := s.repo.Insert(ctx, s.db, invoice); err != nil {
		s.log.Error("insert invoice failed", zap.Error(err))
		return &domain.FormState{
			Message: fmt.Sprintf("Database Error: %v. Failed to Create Invoice.", err),
		}
	}

	s.audit(ctx, "invoice.create", invoice.ID, map[string]any{
		"customer_id": invoice.CustomerID.String(),
		"amount":      invoice.Amount,
		"status":      string(invoice.Status),
	})
	return nil
}

// Update validates the submitted form and rewrites customer, amount and
// status on the invoice. The original date and id never change.
func (s *Service) Update(ctx context.Context, id string, values domain.FormValues) *domain.FormState {
	parsed, fieldErrors := domain.ParseForm(values)
	if len(fieldErrors) > 0 {
		return &domain.FormState{
			Errors:  fieldErrors,
			Message: "Missing Fields. Failed to Update Invoice.",
			Data:    &values,
		}
	}

	invoiceID, err := snowflake.ParseString(id)
	if err != nil {
		return &domain.FormState{Message: "Database Error: Failed to Update Invoice."}
	}

	if err := s.repo.Update(ctx, s.db, invoiceID, parsed); err != nil {
		s.log.Error("update invoice failed", zap.String("invoice_id", id), zap.Error(err))
		return &domain.FormState{Message: "Database Error: Failed to Update Invoice."}
	}

	s.audit(ctx, "invoice.update", invoiceID, map[string]any{
		"customer_id": parsed.CustomerID.String(),
		"amount":      parsed.AmountCents,
		"status":      string(parsed.Status),
	})
	return nil
}

// Delete removes the invoice and always reports the outcome as a message.
func (s *Service) Delete(ctx context.Context, id string) *domain.FormState {
	invoiceID, err := snowflake.ParseString(id)
	if err != nil {
		return &domain.FormState{Message: "Database Error: Failed to Delete Invoice."}
	}

	if err := s.repo.Delete(ctx, s.db, invoiceID); err != nil {
		s.log.Error("delete invoice failed", zap.String("invoice_id", id), zap.Error(err))
		return &domain.FormState{Message: "Database Error: Failed to Delete Invoice."}
	}

	s.audit(ctx, "invoice.delete", invoiceID, nil)
	return &domain.FormState{Message: "Deleted Invoice."}
}

func (s *Service) audit(ctx context.Context, action string, id snowflake.ID, metadata map[string]any) {
	if s.auditSvc == nil {
		return
	}
	_ = s.auditSvc.AuditLog(ctx, action, "invoice", id.String(), metadata)
}
