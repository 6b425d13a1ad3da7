package model

// User is an account row. Password is stored as-is; hashing is owned by
// the upstream identity provider, not this service.
type User struct {
	UserID    int    `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
}
