package render

import (
	customerdomain "github.com/lucas-b-santos/invoice-dashboard/internal/customer/domain"
	invoicedomain "github.com/lucas-b-santos/invoice-dashboard/internal/invoice/domain"
)

// ListingData is the deterministic input for the invoices listing page.
type ListingData struct {
	Query      string
	Page       int
	TotalPages int
	Invoices   []invoicedomain.InvoiceRow
	// Banner, when non-empty, renders a dismissible success banner that
	// auto-hides client-side.
	Banner string
}

// FormData is the input for the create/edit invoice form page.
type FormData struct {
	Title       string
	Action      string
	SubmitLabel string
	Customers   []customerdomain.Customer
	Values      invoicedomain.FormValues
	Errors      map[string][]string
	Message     string
}

// LoginData is the input for the sign-in page.
type LoginData struct {
	Email   string
	Message string
}

type Renderer interface {
	ListingPage(data ListingData) (string, error)
	FormPage(data FormData) (string, error)
	LoginPage(data LoginData) (string, error)
}
