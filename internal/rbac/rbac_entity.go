package rbac

// RolePermission is an extra grant stored in the database.
type RolePermission struct {
	ID       uint   `gorm:"primaryKey"`
	Role     string `gorm:"size:50;not null;uniqueIndex:idx_role_permission"`
	Resource string `gorm:"size:50;not null;uniqueIndex:idx_role_permission"`
	Action   string `gorm:"size:20;not null;uniqueIndex:idx_role_permission"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
