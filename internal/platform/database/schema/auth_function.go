package schema

// FunctionTable represents the 'functions' table.
// Each function groups officers under one back-office role tag.
type FunctionTable struct {
	Table    string
	ID       string
	Name     string
	Role     string
	IsActive string
}

// Function is the schema definition for functions
var Function = FunctionTable{
	Table:    "functions",
	ID:       "id",
	Name:     "name",
	Role:     "role",
	IsActive: "is_active",
}

// Columns returns all standard column names
func (t FunctionTable) Columns() []string {
	return []string{t.ID, t.Name, t.Role, t.IsActive}
}
