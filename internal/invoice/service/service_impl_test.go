package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/lucas-b-santos/invoice-dashboard/internal/clock"
	"github.com/lucas-b-santos/invoice-dashboard/internal/invoice/domain"
	"github.com/lucas-b-santos/invoice-dashboard/internal/invoice/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDate = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

func TestCreateStampsDateAndStoresCents(t *testing.T) {
	db, svc, node := setupInvoiceTest(t)
	customerID := insertCustomer(t, db, node, "Ada Lovelace", "ada@example.com")

	state := svc.Create(context.Background(), domain.FormValues{
		CustomerID: customerID.String(),
		Amount:     "49.99",
		Status:     "pending",
	})
	if state != nil {
		t.Fatalf("expected success, got %+v", state)
	}

	var invoice domain.Invoice
	if err := db.Where("customer_id = ?", customerID).First(&invoice).Error; err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if invoice.Amount != 4999 {
		t.Fatalf("expected 4999 cents, got %d", invoice.Amount)
	}
	if invoice.Status != domain.StatusPending {
		t.Fatalf("unexpected status: %s", invoice.Status)
	}
	want := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !invoice.Date.Equal(want) {
		t.Fatalf("expected date %s, got %s", want, invoice.Date)
	}
}

func TestCreateInvalidFormEchoesValuesAndPersistsNothing(t *testing.T) {
	db, svc, _ := setupInvoiceTest(t)

	var before int64
	if err := db.Model(&domain.Invoice{}).Count(&before).Error; err != nil {
		t.Fatalf("count invoices: %v", err)
	}

	values := domain.FormValues{Amount: "-3", Status: "overdue"}
	state := svc.Create(context.Background(), values)
	if state == nil {
		t.Fatal("expected validation failure")
	}
	if state.Message != "Missing Fields. Failed to Create Invoice." {
		t.Fatalf("unexpected message: %q", state.Message)
	}
	if len(state.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %v", state.Errors)
	}
	if state.Data == nil || *state.Data != values {
		t.Fatalf("expected echoed values, got %+v", state.Data)
	}

	var after int64
	if err := db.Model(&domain.Invoice{}).Count(&after).Error; err != nil {
		t.Fatalf("count invoices: %v", err)
	}
	if after != before {
		t.Fatalf("expected no new rows, before=%d after=%d", before, after)
	}
}

func TestUpdateKeepsDateAndID(t *testing.T) {
	db, svc, node := setupInvoiceTest(t)
	firstCustomer := insertCustomer(t, db, node, "Grace Hopper", "grace@example.com")
	secondCustomer := insertCustomer(t, db, node, "Alan Turing", "alan@example.com")

	original := insertInvoice(t, db, node, firstCustomer, 1200, domain.StatusPending,
		time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))

	state := svc.Update(context.Background(), original.ID.String(), domain.FormValues{
		CustomerID: secondCustomer.String(),
		Amount:     "20.00",
		Status:     "paid",
	})
	if state != nil {
		t.Fatalf("expected success, got %+v", state)
	}

	var updated domain.Invoice
	if err := db.Where("id = ?", original.ID).First(&updated).Error; err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if updated.CustomerID != secondCustomer {
		t.Fatalf("expected customer %s, got %s", secondCustomer, updated.CustomerID)
	}
	if updated.Amount != 2000 {
		t.Fatalf("expected 2000 cents, got %d", updated.Amount)
	}
	if updated.Status != domain.StatusPaid {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
	if !updated.Date.Equal(original.Date) {
		t.Fatalf("date changed: %s vs %s", updated.Date, original.Date)
	}
}

func TestUpdateInvalidFormReportsMissingFields(t *testing.T) {
	_, svc, node := setupInvoiceTest(t)

	state := svc.Update(context.Background(), node.Generate().String(), domain.FormValues{})
	if state == nil {
		t.Fatal("expected validation failure")
	}
	if state.Message != "Missing Fields. Failed to Update Invoice." {
		t.Fatalf("unexpected message: %q", state.Message)
	}
}

func TestDeleteRemovesInvoice(t *testing.T) {
	db, svc, node := setupInvoiceTest(t)
	customerID := insertCustomer(t, db, node, "Edsger Dijkstra", "edsger@example.com")
	invoice := insertInvoice(t, db, node, customerID, 500, domain.StatusPaid,
		time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC))

	state := svc.Delete(context.Background(), invoice.ID.String())
	if state == nil || state.Message != "Deleted Invoice." {
		t.Fatalf("unexpected state: %+v", state)
	}

	var count int64
	if err := db.Model(&domain.Invoice{}).Where("id = ?", invoice.ID).Count(&count).Error; err != nil {
		t.Fatalf("count invoices: %v", err)
	}
	if count != 0 {
		t.Fatal("expected invoice to be deleted")
	}
}

func TestDeleteMissingInvoiceReportsDatabaseError(t *testing.T) {
	_, svc, node := setupInvoiceTest(t)

	state := svc.Delete(context.Background(), node.Generate().String())
	if state == nil || state.Message != "Database Error: Failed to Delete Invoice." {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestListFiltersByCustomerName(t *testing.T) {
	db, svc, node := setupInvoiceTest(t)
	match := insertCustomer(t, db, node, "Findable Person", "findable@example.com")
	other := insertCustomer(t, db, node, "Somebody Else", "somebody@example.com")
	insertInvoice(t, db, node, match, 100, domain.StatusPending, testDate)
	insertInvoice(t, db, node, other, 200, domain.StatusPaid, testDate)

	resp, err := svc.List(context.Background(), domain.ListInvoicesRequest{Query: "findable"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if resp.TotalCount != 1 || len(resp.Invoices) != 1 {
		t.Fatalf("expected 1 match, got total=%d rows=%d", resp.TotalCount, len(resp.Invoices))
	}
	if resp.Invoices[0].CustomerName != "Findable Person" {
		t.Fatalf("unexpected row: %+v", resp.Invoices[0])
	}
}

func TestListPaginatesSixPerPage(t *testing.T) {
	db, svc, node := setupInvoiceTest(t)
	customerID := insertCustomer(t, db, node, "Bulk Customer", "bulk@example.com")
	for i := 0; i < 8; i++ {
		insertInvoice(t, db, node, customerID, int64(100+i), domain.StatusPending,
			testDate.AddDate(0, 0, -i))
	}

	resp, err := svc.List(context.Background(), domain.ListInvoicesRequest{Query: "bulk"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Invoices) != 6 {
		t.Fatalf("expected 6 rows on first page, got %d", len(resp.Invoices))
	}
	if resp.TotalCount != 8 || resp.TotalPages != 2 {
		t.Fatalf("unexpected page info: %+v", resp.PageInfo)
	}
}

func setupInvoiceTest(t *testing.T) (*gorm.DB, domain.Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS customers (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	).Error; err != nil {
		t.Fatalf("create customers: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS invoices (
			id BIGINT PRIMARY KEY,
			customer_id BIGINT NOT NULL,
			amount BIGINT NOT NULL,
			status TEXT NOT NULL,
			date DATE NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	).Error; err != nil {
		t.Fatalf("create invoices: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}

	svc := NewService(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.Fixed(testDate),
		Repo:  repository.Provide(),
	})
	return db, svc, node
}

func insertCustomer(t *testing.T, db *gorm.DB, node *snowflake.Node, name, email string) snowflake.ID {
	t.Helper()
	id := node.Generate()
	if err := db.Exec(
		`INSERT INTO customers (id, name, email, image_url) VALUES (?, ?, ?, ?)`,
		id, name, email, "/customers/"+email+".png",
	).Error; err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	return id
}

func insertInvoice(t *testing.T, db *gorm.DB, node *snowflake.Node, customerID snowflake.ID, amount int64, status domain.InvoiceStatus, date time.Time) domain.Invoice {
	t.Helper()
	invoice := domain.Invoice{
		ID:         node.Generate(),
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
		Date:       date,
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("insert invoice: %v", err)
	}
	return invoice
}
