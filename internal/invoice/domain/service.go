package domain

import (
	"context"
	"errors"

	"github.com/lucas-b-santos/invoice-dashboard/pkg/db/pagination"
)

// FormValues is the raw, untyped field bag submitted by an invoice form.
// Values are echoed back verbatim when validation fails so the form can be
// re-rendered pre-filled.
type FormValues struct {
	CustomerID string `form:"customer_id" json:"customer_id"`
	Amount     string `form:"amount" json:"amount"`
	Status     string `form:"status" json:"status"`
}

// FormState is the outcome of a form action. A nil *FormState means the
// action succeeded and the caller should redirect. Errors maps field names to
// human-readable messages.
type FormState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
	Data    *FormValues         `json:"data,omitempty"`
}

// HasFieldErrors reports whether the state carries per-field validation
// errors (as opposed to an operation-level message only).
func (s *FormState) HasFieldErrors() bool {
	return s != nil && len(s.Errors) > 0
}

type ListInvoicesRequest struct {
	pagination.Pagination
	Query string `form:"query"`
}

type ListInvoicesResponse struct {
	pagination.PageInfo
	Invoices []InvoiceRow `json:"invoices"`
}

// Service is the invoice action layer: each mutation validates, persists and
// reports its outcome as a FormState.
type Service interface {
	List(ctx context.Context, req ListInvoicesRequest) (ListInvoicesResponse, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	Create(ctx context.Context, values FormValues) *FormState
	Update(ctx context.Context, id string, values FormValues) *FormState
	Delete(ctx context.Context, id string) *FormState
}

var (
	ErrInvalidInvoiceID = errors.New("invalid_invoice_id")
	ErrInvoiceNotFound  = errors.New("invoice_not_found")
)
