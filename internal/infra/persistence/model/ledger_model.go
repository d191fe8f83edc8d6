package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel mirrors the 'clients' table. Every row belongs to a tenant.
type ClientModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	PhoneNumber  string    `gorm:"type:varchar(20);not null"`
	TotalBalance float64   `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Invoices     []InvoiceModel     `gorm:"foreignKey:ClientID"`
	Transactions []TransactionModel `gorm:"foreignKey:ClientID"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// InvoiceModel mirrors the 'invoices' table. The invoice number is unique per tenant.
type InvoiceModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_tenant_number"`
	ClientID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID     *uuid.UUID `gorm:"type:uuid"`
	InvoiceNumber string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_invoices_tenant_number"`
	Amount        float64    `gorm:"type:numeric(12,2);not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'draft'"`
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// TransactionModel mirrors the 'transactions' table, the per-client ledger.
type TransactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(20);not null"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
