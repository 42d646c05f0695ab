package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/lucas-b-santos/invoice-dashboard/internal/auth/domain"
	"github.com/lucas-b-santos/invoice-dashboard/internal/auth/password"
	authrepository "github.com/lucas-b-santos/invoice-dashboard/internal/auth/repository"
	customerdomain "github.com/lucas-b-santos/invoice-dashboard/internal/customer/domain"
	invoicedomain "github.com/lucas-b-santos/invoice-dashboard/internal/invoice/domain"
	"gorm.io/gorm"
)

const (
	defaultAdminEmail    = "user@nextmail.com"
	defaultAdminPassword = "123456"
	defaultAdminDisplay  = "User"
)

// EnsureAdminUser seeds the default sign-in user for startup bootstrap.
func EnsureAdminUser(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	repo := authrepository.Provide()
	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := repo.FindUserByEmail(ctx, tx, defaultAdminEmail)
		if err == nil {
			return nil
		}
		if !errors.Is(err, authdomain.ErrUserNotFound) {
			return err
		}

		hashed, err := password.Hash(defaultAdminPassword)
		if err != nil {
			return err
		}
		user := authdomain.User{
			ID:           node.Generate(),
			Email:        strings.ToLower(defaultAdminEmail),
			DisplayName:  defaultAdminDisplay,
			PasswordHash: hashed,
			CreatedAt:    time.Now().UTC(),
		}
		return repo.InsertUser(ctx, tx, &user)
	})
}

type demoCustomer struct {
	name     string
	email    string
	imageURL string
}

type demoInvoice struct {
	customer string
	amount   int64
	status   invoicedomain.InvoiceStatus
	date     string
}

var demoCustomers = []demoCustomer{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var demoInvoices = []demoInvoice{
	{"Evil Rabbit", 15795, invoicedomain.StatusPending, "2022-12-06"},
	{"Delba de Oliveira", 20348, invoicedomain.StatusPending, "2022-11-14"},
	{"Amy Burns", 3040, invoicedomain.StatusPaid, "2022-10-29"},
	{"Michael Novotny", 44800, invoicedomain.StatusPaid, "2023-09-10"},
	{"Balazs Orban", 34577, invoicedomain.StatusPending, "2023-08-05"},
	{"Lee Robinson", 54246, invoicedomain.StatusPending, "2023-07-16"},
	{"Evil Rabbit", 666, invoicedomain.StatusPending, "2023-06-27"},
	{"Michael Novotny", 32545, invoicedomain.StatusPaid, "2023-06-09"},
	{"Amy Burns", 1250, invoicedomain.StatusPaid, "2023-06-17"},
	{"Delba de Oliveira", 8546, invoicedomain.StatusPaid, "2023-06-07"},
	{"Lee Robinson", 500, invoicedomain.StatusPaid, "2023-08-19"},
	{"Delba de Oliveira", 8945, invoicedomain.StatusPaid, "2023-06-03"},
	{"Michael Novotny", 1000, invoicedomain.StatusPaid, "2022-06-05"},
}

// EnsureDemoData seeds sample customers and invoices so a fresh install has
// something to list. Idempotent: an existing customer row skips the whole run.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.WithContext(ctx).Model(&customerdomain.Customer{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		byName := make(map[string]snowflake.ID, len(demoCustomers))
		for _, dc := range demoCustomers {
			customer := customerdomain.Customer{
				ID:        node.Generate(),
				Name:      dc.name,
				Email:     dc.email,
				ImageURL:  dc.imageURL,
				CreatedAt: now,
			}
			if err := tx.WithContext(ctx).Create(&customer).Error; err != nil {
				return err
			}
			byName[dc.name] = customer.ID
		}

		for _, di := range demoInvoices {
			date, err := time.Parse("2006-01-02", di.date)
			if err != nil {
				return err
			}
			invoice := invoicedomain.Invoice{
				ID:         node.Generate(),
				CustomerID: byName[di.customer],
				Amount:     di.amount,
				Status:     di.status,
				Date:       date,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := tx.WithContext(ctx).Create(&invoice).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
