package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Customer is a billable party invoices reference.
type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Email     string       `gorm:"type:text;not null" json:"email"`
	ImageURL  string       `gorm:"type:text;not null;default:''" json:"image_url"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
