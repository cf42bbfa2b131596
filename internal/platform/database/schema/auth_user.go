package schema

// UserTable represents the 'users' table (self-storage customers)
type UserTable struct {
	Table        string
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Status       string
	Verified     string
	Role         string
	LastLoginAt  string
	CreatedAt    string
}

// User is the schema definition for users
var User = UserTable{
	Table:        "users",
	ID:           "id",
	Name:         "name",
	Email:        "email",
	PasswordHash: "password_hash",
	Status:       "status",
	Verified:     "verified",
	Role:         "role",
	LastLoginAt:  "last_login_at",
	CreatedAt:    "created_at",
}

// Columns returns all standard column names
func (t UserTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.PasswordHash, t.Status, t.Verified, t.Role, t.LastLoginAt, t.CreatedAt,
	}
}
