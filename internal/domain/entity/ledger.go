// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer of a tenant's business. TotalBalance tracks what the
// client currently owes, maintained by sales and top-up payments.
type Client struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Name         string
	Email        string
	PhoneNumber  string
	TotalBalance float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product is an item or service a tenant sells.
type Product struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// IsValid checks if the InvoiceStatus is a valid value.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	default:
		return false
	}
}

// Invoice is a bill issued by a tenant to one of its clients.
type Invoice struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	ClientID      uuid.UUID
	ProductID     *uuid.UUID // Optional reference to the invoiced product.
	InvoiceNumber string     // Tenant-scoped, e.g. "INV-0001".
	Amount        float64
	Status        InvoiceStatus
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransactionType distinguishes money moving to or from a client's account.
type TransactionType string

const (
	TransactionTypeSale    TransactionType = "sale"
	TransactionTypePayment TransactionType = "payment"
)

// IsValid checks if the TransactionType is a valid value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeSale, TransactionTypePayment:
		return true
	default:
		return false
	}
}

// Transaction is a single ledger entry against a client's account.
type Transaction struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	ClientID  uuid.UUID
	Type      TransactionType
	Amount    float64
	Note      string
	CreatedAt time.Time
}

// TransactionSummary aggregates a client's ledger entries.
// Balance is total sales minus total payments.
type TransactionSummary struct {
	TotalSales       float64
	TotalPayments    float64
	Balance          float64
	TransactionCount int
}
