package rbac

import "time"

type RolePermission struct {
	Role      string `gorm:"type:varchar(30);primaryKey"`
	Resource  string `gorm:"type:varchar(50);primaryKey"`
	Action    string `gorm:"type:varchar(30);primaryKey"`
	CreatedAt time.Time
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// RoleHierarchy lists child -> parent pairs; a child inherits every parent permission.
var RoleHierarchy = [][2]string{
	{"manager", "employee"},
	{"admin", "manager"},
	{"super_admin", "admin"},
}

// DefaultPermissions is seeded on startup. Rows added later by operators are kept.
var DefaultPermissions = []RolePermission{
	{Role: "employee", Resource: "request", Action: "create"},
	{Role: "employee", Resource: "request", Action: "read"},
	{Role: "employee", Resource: "request", Action: "update"},
	{Role: "employee", Resource: "request", Action: "delete"},
	{Role: "employee", Resource: "personal_details", Action: "create"},
	{Role: "employee", Resource: "personal_details", Action: "read"},
	{Role: "employee", Resource: "personal_details", Action: "update"},
	{Role: "employee", Resource: "profile", Action: "create"},
	{Role: "employee", Resource: "profile", Action: "read"},
	{Role: "employee", Resource: "profile", Action: "update"},
	{Role: "employee", Resource: "profile", Action: "delete"},
	{Role: "employee", Resource: "document", Action: "create"},
	{Role: "employee", Resource: "document", Action: "read"},
	{Role: "employee", Resource: "employee", Action: "read"},

	{Role: "manager", Resource: "request", Action: "respond"},
	{Role: "manager", Resource: "request", Action: "approve_list"},

	{Role: "admin", Resource: "master", Action: "create"},
	{Role: "admin", Resource: "master", Action: "read"},
	{Role: "admin", Resource: "master", Action: "update"},
	{Role: "admin", Resource: "master", Action: "delete"},
	{Role: "admin", Resource: "employee", Action: "create"},
	{Role: "admin", Resource: "profile", Action: "purge"},
	{Role: "admin", Resource: "rbac", Action: "read"},
}
