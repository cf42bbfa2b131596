package schema

// OfficerTable represents the 'cso_officers' table
type OfficerTable struct {
	Table        string
	ID           string
	Name         string
	Email        string
	PasswordHash string
	FunctionID   string
	IsActive     string
	LastLoginAt  string
	CreatedAt    string
}

// Officer is the schema definition for cso_officers
var Officer = OfficerTable{
	Table:        "cso_officers",
	ID:           "id",
	Name:         "name",
	Email:        "email",
	PasswordHash: "password_hash",
	FunctionID:   "function_id",
	IsActive:     "is_active",
	LastLoginAt:  "last_login_at",
	CreatedAt:    "created_at",
}

// Columns returns all standard column names
func (t OfficerTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.PasswordHash, t.FunctionID, t.IsActive, t.LastLoginAt, t.CreatedAt,
	}
}
