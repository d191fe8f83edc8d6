package model

import (
	"time"

	"github.com/google/uuid"
)

// TenantModel mirrors the 'tenants' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The phone number is unique so repeated provisioning reuses the existing row.
type TenantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	PhoneNumber  string    `gorm:"type:varchar(20);unique;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profiles []ProfileModel `gorm:"foreignKey:TenantID"`
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

// ProfileModel mirrors the 'profiles' table. UserID references the login identity
// and is unique, so an identity carries at most one profile.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;unique;not null"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null"`
	FullName    string    `gorm:"type:varchar(255);not null"`
	PhoneNumber string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// RoleAssignmentModel mirrors the 'user_roles' table.
type RoleAssignmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_user_id_role"`
	Role      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_roles_user_id_role"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleAssignmentModel) TableName() string {
	return "user_roles"
}
