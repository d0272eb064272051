package domain

import "time"

// Permission is an action allowed on a resource, unique per (resource, action)
type Permission struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Resource    string    `gorm:"column:resource;type:varchar(50);not null;uniqueIndex:idx_permissions_resource_action" json:"resource"`
	Action      string    `gorm:"column:action;type:varchar(50);not null;uniqueIndex:idx_permissions_resource_action" json:"action"`
	Description string    `gorm:"column:description;type:varchar(255)" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Permission) TableName() string { return "permissions" }

// Key returns the "resource:action" form of the permission
func (p Permission) Key() string { return p.Resource + ":" + p.Action }

// Role groups permissions
type Role struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(50);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;type:varchar(255)" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string { return "roles" }

// RolePermission maps roles to permissions
type RolePermission struct {
	RoleID       uint64 `gorm:"column:role_id;primaryKey" json:"role_id"`
	PermissionID uint64 `gorm:"column:permission_id;primaryKey" json:"permission_id"`

	Role       Role       `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
	Permission Permission `gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RolePermission) TableName() string { return "role_permissions" }

// User is an account of the auth system
type User struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Name         string    `gorm:"column:name;type:varchar(100)" json:"name"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	RoleID       uint64    `gorm:"column:role_id;index" json:"role_id"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Role Role `gorm:"foreignKey:RoleID" json:"-"`
}

func (User) TableName() string { return "users" }
