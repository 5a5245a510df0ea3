// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Role string

const (
	RoleNormal Role = "normal"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleNormal, RoleEditor, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

const (
	DefaultPlan   = "basic"
	DefaultStatus = "normal"
)

type Tenant struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Plan        string    `db:"plan" json:"plan"`
	Status      string    `db:"status" json:"status"`
	OwnerID     string    `db:"owner_id" json:"ownerId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type Membership struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenantId"`
	UserID    string    `db:"user_id" json:"userId"`
	Role      Role      `db:"role" json:"role"`
	Current   bool      `db:"current" json:"current"`
	InvitedBy string    `db:"invited_by" json:"invitedBy,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// UserTenant is a tenant as seen by one of its members.
type UserTenant struct {
	Tenant
	Role    Role `json:"role"`
	Current bool `json:"current"`
}

type TenantUser struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	InvitedBy string    `json:"invitedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TenantContext is the resolved caller scope every tenant-bound operation runs in.
type TenantContext struct {
	TenantID string `json:"tenantId"`
	UserID   string `json:"userId"`
	Role     Role   `json:"role"`
}

type ModelCategory string

const (
	CategoryLLM          ModelCategory = "llm"
	CategoryEmbedding    ModelCategory = "embedding"
	CategoryRerank       ModelCategory = "rerank"
	CategoryTTS          ModelCategory = "tts"
	CategorySpeechToText ModelCategory = "speech_to_text"
)

var ModelCategories = []ModelCategory{
	CategoryLLM,
	CategoryEmbedding,
	CategoryRerank,
	CategoryTTS,
	CategorySpeechToText,
}

func (c ModelCategory) Valid() bool {
	for _, v := range ModelCategories {
		if c == v {
			return true
		}
	}
	return false
}

type ModelSource string

const (
	SourceAuto   ModelSource = "auto"
	SourceCustom ModelSource = "custom"
)

type ModelDescriptor struct {
	ID          string        `json:"id" yaml:"id"`
	DisplayName string        `json:"displayName" yaml:"name"`
	Category    ModelCategory `json:"category" yaml:"category"`
}

type ProviderCredential struct {
	TenantID        string     `db:"tenant_id"`
	Vendor          string     `db:"vendor"`
	EncryptedConfig string     `db:"encrypted_config"`
	IsValid         bool       `db:"is_valid"`
	LastValidatedAt *time.Time `db:"last_validated_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// CredentialSummary never carries the configuration itself.
type CredentialSummary struct {
	Vendor          string     `json:"vendor"`
	IsValid         bool       `json:"isValid"`
	LastValidatedAt *time.Time `json:"lastValidatedAt,omitempty"`
}

type CatalogEntry struct {
	ID          string        `db:"id" json:"id"`
	TenantID    string        `db:"tenant_id" json:"tenantId"`
	Vendor      string        `db:"vendor" json:"vendor"`
	ModelID     string        `db:"model_id" json:"modelId"`
	DisplayName string        `db:"display_name" json:"displayName"`
	Category    ModelCategory `db:"category" json:"category"`
	Source      ModelSource   `db:"source" json:"source"`
	Enabled     bool          `db:"enabled" json:"enabled"`
	RetiredAt   *time.Time    `db:"retired_at" json:"retiredAt,omitempty"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updatedAt"`
}

type CatalogFilter struct {
	Vendor      string
	Category    ModelCategory
	Source      ModelSource
	EnabledOnly bool
}

type DefaultModelBinding struct {
	TenantID  string        `db:"tenant_id" json:"tenantId"`
	Category  ModelCategory `db:"category" json:"category"`
	Vendor    string        `db:"vendor" json:"vendor"`
	ModelID   string        `db:"model_id" json:"modelId"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`
}
