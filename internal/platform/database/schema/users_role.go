package schema

// UserRoleTable represents the 'users.role' table
type UserRoleTable struct {
	Table string
	ID    string
	Name  string
}

// UserRole is the schema definition for users.role
var UserRole = UserRoleTable{
	Table: "users.role",
	ID:    "id",
	Name:  "name",
}
