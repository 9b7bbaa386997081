// Package model defines database models for persistence layer.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spa-management/backend/internal/domain/entity"
)

// CustomerModel represents the customers table in the database. Email
// uniqueness is enforced case-insensitively through the unique index on the
// lowercased NormalizedEmail column; the original casing is preserved in
// Email for display.
type CustomerModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email                string     `gorm:"type:varchar(255);not null"`
	NormalizedEmail      string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordSalt         []byte     `gorm:"not null"`
	PasswordHash         []byte     `gorm:"not null"`
	PhoneNumber          string     `gorm:"type:varchar(32);not null"`
	EmailConfirmed       bool       `gorm:"default:false"`
	PhoneNumberConfirmed bool       `gorm:"default:false"`
	TwoFactorEnabled     bool       `gorm:"default:false"`
	AccessFailedCount    int        `gorm:"default:0"`
	LockoutEnabled       bool       `gorm:"default:false"`
	LockoutEnd           *time.Time `gorm:"type:timestamptz"`
	FirstName            string     `gorm:"type:varchar(100);not null"`
	LastName             string     `gorm:"type:varchar(100);not null"`
	Gender               string     `gorm:"type:varchar(10);not null"`
	DateOfBirth          time.Time  `gorm:"not null"`
	Preferences          *string    `gorm:"type:varchar(1000)"`
	Notes                *string    `gorm:"type:varchar(1000)"`
	CreatedAt            time.Time  `gorm:"not null"`
	LastUpdateAt         time.Time  `gorm:"not null"`
	DeactivatedAt        *time.Time `gorm:"type:timestamptz"`
}

// TableName returns the table name for the CustomerModel.
func (CustomerModel) TableName() string {
	return "customers"
}

// NormalizeEmail lowercases an email for case-insensitive lookup and
// uniqueness checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToEntity converts a CustomerModel to a domain Customer entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	return &entity.Customer{
		Identity: entity.Identity{
			ID:                   m.ID,
			Email:                m.Email,
			PasswordSalt:         m.PasswordSalt,
			PasswordHash:         m.PasswordHash,
			PhoneNumber:          m.PhoneNumber,
			EmailConfirmed:       m.EmailConfirmed,
			PhoneNumberConfirmed: m.PhoneNumberConfirmed,
			TwoFactorEnabled:     m.TwoFactorEnabled,
			AccessFailedCount:    m.AccessFailedCount,
			LockoutEnabled:       m.LockoutEnabled,
			LockoutEnd:           m.LockoutEnd,
			CreatedAt:            m.CreatedAt,
			LastUpdateAt:         m.LastUpdateAt,
			DeactivatedAt:        m.DeactivatedAt,
		},
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Gender:      m.Gender,
		DateOfBirth: m.DateOfBirth,
		Preferences: m.Preferences,
		Notes:       m.Notes,
	}
}

// FromEntity creates a CustomerModel from a domain Customer entity.
func FromEntity(customer *entity.Customer) *CustomerModel {
	return &CustomerModel{
		ID:                   customer.ID,
		Email:                customer.Email,
		NormalizedEmail:      NormalizeEmail(customer.Email),
		PasswordSalt:         customer.PasswordSalt,
		PasswordHash:         customer.PasswordHash,
		PhoneNumber:          customer.PhoneNumber,
		EmailConfirmed:       customer.EmailConfirmed,
		PhoneNumberConfirmed: customer.PhoneNumberConfirmed,
		TwoFactorEnabled:     customer.TwoFactorEnabled,
		AccessFailedCount:    customer.AccessFailedCount,
		LockoutEnabled:       customer.LockoutEnabled,
		LockoutEnd:           customer.LockoutEnd,
		FirstName:            customer.FirstName,
		LastName:             customer.LastName,
		Gender:               customer.Gender,
		DateOfBirth:          customer.DateOfBirth,
		Preferences:          customer.Preferences,
		Notes:                customer.Notes,
		CreatedAt:            customer.CreatedAt,
		LastUpdateAt:         customer.LastUpdateAt,
		DeactivatedAt:        customer.DeactivatedAt,
	}
}
