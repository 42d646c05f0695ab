package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/lucas-b-santos/invoice-dashboard/internal/invoice/domain"
	"github.com/lucas-b-santos/invoice-dashboard/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

// Provide constructs the invoice repository.
func Provide() domain.Repository {
	return repository{}
}

func (repository) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (repository) Update(ctx context.Context, db *gorm.DB, id snowflake.ID, form domain.ParsedForm) error {
	return db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"customer_id": form.CustomerID,
			"amount":      form.AmountCents,
			"status":      form.Status,
		}).Error
}

func (repository) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	result := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Invoice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (repository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (repository) Search(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]domain.InvoiceRow, int64, error) {
	var total int64
	if err := searchScope(ctx, db, query).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.InvoiceRow
	err := searchScope(ctx, db, query).
		Select(`invoices.id,
			invoices.customer_id,
			customers.name AS customer_name,
			customers.email AS customer_email,
			customers.image_url,
			invoices.amount,
			invoices.status,
			invoices.date`).
		Order("invoices.date DESC, invoices.id DESC").
		Limit(page.PageSize).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func searchScope(ctx context.Context, db *gorm.DB, query string) *gorm.DB {
	scope := db.WithContext(ctx).
		Table("invoices").
		Joins("JOIN customers ON customers.id = invoices.customer_id")

	query = strings.TrimSpace(query)
	if query == "" {
		return scope
	}

	like := "%" + strings.ToLower(query) + "%"
	return scope.Where(
		`LOWER(customers.name) LIKE ?
			OR LOWER(customers.email) LIKE ?
			OR CAST(invoices.amount AS TEXT) LIKE ?
			OR CAST(invoices.date AS TEXT) LIKE ?
			OR LOWER(invoices.status) LIKE ?`,
		like, like, like, like, like,
	)
}
