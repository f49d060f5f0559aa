package hubapi

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserList struct {
	Value []User   `json:"value"`
	Meta  ListMeta `json:"meta"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role,omitempty"`
}

type PatchUserRequest struct {
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// RoleInfo describes one assignable role on the public metadata endpoint.
type RoleInfo struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}
