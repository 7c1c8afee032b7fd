package schema

// UserAccountRoleTable represents the 'users.accountrole' junction table
type UserAccountRoleTable struct {
	Table     string
	AccountID string
	RoleID    string
}

// UserAccountRole is the schema definition for users.accountrole
var UserAccountRole = UserAccountRoleTable{
	Table:     "users.accountrole",
	AccountID: "accountid",
	RoleID:    "roleid",
}
