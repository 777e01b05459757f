package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role identifies what an admin is allowed to do.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleSubAdmin   Role = "sub_admin"
	RoleViewer     Role = "viewer"
)

// Admin account statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Admin represents an administrative account able to log in to the dashboard.
type Admin struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role       `json:"role" gorm:"size:50;default:'super_admin'"`
	Status       string     `json:"status" gorm:"size:20;default:'active';index"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the account may authenticate.
func (a *Admin) IsActive() bool {
	return a.Status == StatusActive
}

// Capabilities are the coarse write permissions derived from an admin's role.
type Capabilities struct {
	CanEdit   bool `json:"canEdit"`
	CanCreate bool `json:"canCreate"`
	CanDelete bool `json:"canDelete"`
}

// CapabilitiesForRole derives capability flags from a role. Viewers are
// read-only; every other role gets full write access.
func CapabilitiesForRole(r Role) Capabilities {
	if r == RoleViewer {
		return Capabilities{}
	}
	return Capabilities{CanEdit: true, CanCreate: true, CanDelete: true}
}

// AdminInfo is the wire representation of an admin: every persisted field
// except the password hash, plus derived capability flags.
type AdminInfo struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	Status      string     `json:"status"`
	LastLogin   *time.Time `json:"lastLogin"`
	Permissions []string   `json:"permissions"`
	Capabilities
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Info projects the admin into its wire representation.
func (a *Admin) Info() AdminInfo {
	return AdminInfo{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		Status:       a.Status,
		LastLogin:    a.LastLogin,
		Permissions:  []string{},
		Capabilities: CapabilitiesForRole(a.Role),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
