package models

import "time"

// Organization types as the backend reports them.
const (
	OrgGovernment = "government"
	OrgPrivate    = "private"
)

// Organization mirrors the backend organization record, including the fee and
// tax services it owns.
type Organization struct {
	ID        ID           `json:"id"`
	Name      string       `json:"name"`
	Type      string       `json:"type"` // government | private
	Fees      []FeeService `json:"fees,omitempty"`
	Taxes     []TaxService `json:"taxes,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// IdentityFieldType enumerates the input types an identity-verification field
// can take.
type IdentityFieldType string

const (
	FieldText   IdentityFieldType = "text"
	FieldNumber IdentityFieldType = "number"
	FieldEmail  IdentityFieldType = "email"
	FieldPhone  IdentityFieldType = "phone"
	FieldFile   IdentityFieldType = "file"
)

// IdentityConfig is one identity-verification field definition scoped to an
// organization.
type IdentityConfig struct {
	ID             ID                `json:"id"`
	OrganizationID ID                `json:"organization_id"`
	Name           string            `json:"name"`
	Label          string            `json:"label"`
	Type           IdentityFieldType `json:"type"`
	Required       bool              `json:"required"`
	Active         bool              `json:"active"`
	SortOrder      int               `json:"sort_order"`
}
