package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/lucas-b-santos/invoice-dashboard/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	// Update sets customer, amount and status on the given invoice. The
	// stamped date is never touched.
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, form ParsedForm) error
	// Delete removes the invoice and reports ErrInvoiceNotFound when no row
	// matched.
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	Search(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]InvoiceRow, int64, error)
}
