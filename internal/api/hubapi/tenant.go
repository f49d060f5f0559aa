package hubapi

import "time"

// Tenant is the wire representation of an organization.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TenantList struct {
	Value []Tenant `json:"value"`
	Meta  ListMeta `json:"meta"`
}

type TenantSummary struct {
	Tenant    Tenant `json:"tenant"`
	UserCount int    `json:"userCount"`
}

type CreateTenantRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Tier string `json:"tier,omitempty"`
}

// PatchTenantRequest carries the mutable tenant attributes. StatusEvent is
// a lifecycle event name (activate, suspend, resume, deactivate), never a
// raw target status.
type PatchTenantRequest struct {
	Tier        *string `json:"tier,omitempty"`
	StatusEvent *string `json:"statusEvent,omitempty"`
}
