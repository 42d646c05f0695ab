package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// InvoiceStatus enumerates the lifecycle states an invoice can be in.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// Invoice is a billing record. Amount is stored in minor currency units
// (cents). Date is stamped server-side at creation and never updated.
type Invoice struct {
	ID         snowflake.ID  `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID  `gorm:"not null;index" json:"customer_id"`
	Amount     int64         `gorm:"not null" json:"amount"`
	Status     InvoiceStatus `gorm:"type:text;not null" json:"status"`
	Date       time.Time     `gorm:"type:date;not null" json:"date"`
	CreatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceRow is a listing row joined with its customer.
type InvoiceRow struct {
	ID            snowflake.ID  `gorm:"column:id" json:"id"`
	CustomerID    snowflake.ID  `gorm:"column:customer_id" json:"customer_id"`
	CustomerName  string        `gorm:"column:customer_name" json:"customer_name"`
	CustomerEmail string        `gorm:"column:customer_email" json:"customer_email"`
	ImageURL      string        `gorm:"column:image_url" json:"image_url"`
	Amount        int64         `gorm:"column:amount" json:"amount"`
	Status        InvoiceStatus `gorm:"column:status" json:"status"`
	Date          time.Time     `gorm:"column:date" json:"date"`
}
