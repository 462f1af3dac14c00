package entity

import "time"

// User mirrors one identity-provider subject inside the application.
// The ID equals the provider's subject claim. A user document is created on
// first sign-in with RoleViewer and the default organization; subsequent
// sign-ins only refresh LastLogin.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	PhotoURL       string    `json:"photoURL,omitempty"`
	Role           Role      `json:"role"`
	OrganizationID string    `json:"organizationId"`
	LastLogin      time.Time `json:"lastLogin"`
}

// DefaultOrganizationID is assigned to accounts that have not been placed
// into a tenant yet.
const DefaultOrganizationID = "default"
