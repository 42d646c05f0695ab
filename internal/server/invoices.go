package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lucas-b-santos/invoice-dashboard/internal/render"
	"github.com/shopspring/decimal"

	invoicedomain "github.com/lucas-b-santos/invoice-dashboard/internal/invoice/domain"
)

const listingPath = "/dashboard/invoices"

// ListInvoices renders the invoices listing. Flash cookies set by the
// mutation handlers decide whether a success banner is shown; pages carrying
// a banner bypass the cache so the banner renders exactly once.
func (s *Server) ListInvoices(c *gin.Context) {
	var req invoicedomain.ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	banner := ""
	switch {
	case hasFlash(c, flashInvoiceCreated):
		banner = "Invoice created successfully!"
	case hasFlash(c, flashInvoiceUpdated):
		banner = "Invoice updated successfully!"
	}

	cacheKey := fmt.Sprintf("%s?query=%s&page=%d", listingPath, req.Query, req.Page)
	if banner == "" {
		if html, ok := s.listingCache.Get(cacheKey); ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
			return
		}
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	html, err := s.renderer.ListingPage(render.ListingData{
		Query:      strings.TrimSpace(req.Query),
		Page:       resp.Page,
		TotalPages: resp.TotalPages,
		Invoices:   resp.Invoices,
		Banner:     banner,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if banner == "" {
		s.listingCache.Set(cacheKey, html)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) ShowCreateInvoice(c *gin.Context) {
	s.renderInvoiceForm(c, http.StatusOK, render.FormData{
		Title:       "Create Invoice",
		Action:      listingPath,
		SubmitLabel: "Create Invoice",
	})
}

// CreateInvoice validates and persists a new invoice. On success the client
// is redirected to the listing with a one-shot created flag; on failure the
// form is re-rendered with the collected errors and the echoed raw values.
func (s *Server) CreateInvoice(c *gin.Context) {
	var values invoicedomain.FormValues
	if err := c.ShouldBind(&values); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	state := s.invoiceSvc.Create(c.Request.Context(), values)
	if state != nil {
		s.renderInvoiceFormState(c, render.FormData{
			Title:       "Create Invoice",
			Action:      listingPath,
			SubmitLabel: "Create Invoice",
		}, values, state)
		return
	}

	s.setFlash(c, flashInvoiceCreated)
	s.listingCache.Invalidate()
	c.Redirect(http.StatusSeeOther, listingPath)
}

func (s *Server) ShowEditInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.renderInvoiceForm(c, http.StatusOK, render.FormData{
		Title:       "Edit Invoice",
		Action:      listingPath + "/" + id,
		SubmitLabel: "Edit Invoice",
		Values: invoicedomain.FormValues{
			CustomerID: invoice.CustomerID.String(),
			Amount:     decimal.New(invoice.Amount, -2).String(),
			Status:     string(invoice.Status),
		},
	})
}

// UpdateInvoice rewrites customer, amount and status on an invoice. The
// stamped date never changes.
func (s *Server) UpdateInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var values invoicedomain.FormValues
	if err := c.ShouldBind(&values); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	state := s.invoiceSvc.Update(c.Request.Context(), id, values)
	if state != nil {
		s.renderInvoiceFormState(c, render.FormData{
			Title:       "Edit Invoice",
			Action:      listingPath + "/" + id,
			SubmitLabel: "Edit Invoice",
		}, values, state)
		return
	}

	s.setFlash(c, flashInvoiceUpdated)
	s.listingCache.Invalidate()
	c.Redirect(http.StatusSeeOther, listingPath)
}

// DeleteInvoice removes an invoice in place. No redirect: the caller stays
// on the listing and reads the outcome message.
func (s *Server) DeleteInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	state := s.invoiceSvc.Delete(c.Request.Context(), id)
	if state.Message != "Deleted Invoice." {
		c.JSON(http.StatusInternalServerError, state)
		return
	}

	s.listingCache.Invalidate()
	c.JSON(http.StatusOK, state)
}

func (s *Server) renderInvoiceForm(c *gin.Context, status int, data render.FormData) {
	customers, err := s.customerRepo.List(c.Request.Context(), s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	data.Customers = customers

	html, err := s.renderer.FormPage(data)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) renderInvoiceFormState(c *gin.Context, data render.FormData, values invoicedomain.FormValues, state *invoicedomain.FormState) {
	status := http.StatusInternalServerError
	if state.HasFieldErrors() {
		status = http.StatusUnprocessableEntity
	}

	data.Errors = state.Errors
	data.Message = state.Message
	if state.Data != nil {
		data.Values = *state.Data
	} else {
		data.Values = values
	}
	s.renderInvoiceForm(c, status, data)
}
