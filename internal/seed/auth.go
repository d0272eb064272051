package seed

import (
	"context"
	"fmt"

	"github.com/starterkit/render-starter/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	authResources = []string{"users", "roles", "posts"}
	authActions   = []string{"create", "read", "update", "delete"}
)

// roleDef describes a seeded role and the "resource:action" keys it grants
type roleDef struct {
	Name        string
	Description string
	Permissions []string
}

var authRoles = []roleDef{
	{Name: "admin", Description: "Full access to every resource", Permissions: nil},
	{Name: "editor", Description: "Manages posts", Permissions: []string{
		"posts:create", "posts:read", "posts:update", "posts:delete", "users:read",
	}},
	{Name: "user", Description: "Reads content", Permissions: []string{"posts:read", "users:read"}},
}

type userDef struct {
	Email string
	Name  string
	Role  string
}

var authUsers = []userDef{
	{Email: "admin@example.com", Name: "Admin User", Role: "admin"},
	{Email: "editor@example.com", Name: "Editor User", Role: "editor"},
	{Email: "user@example.com", Name: "Regular User", Role: "user"},
}

// AuthSeeder seeds permissions, roles and users of the auth schema
type AuthSeeder struct {
	password string
	cost     int
}

// NewAuthSeeder creates an AuthSeeder whose users share password
func NewAuthSeeder(password string) *AuthSeeder {
	return &AuthSeeder{password: password, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost (tests use bcrypt.MinCost)
func (s *AuthSeeder) WithCost(cost int) *AuthSeeder {
	s.cost = cost
	return s
}

func (s *AuthSeeder) Name() string { return "auth" }

func (s *AuthSeeder) Seed(ctx context.Context, db *gorm.DB) error {
	perms, err := s.seedPermissions(ctx, db)
	if err != nil {
		return err
	}
	roles, err := s.seedRoles(ctx, db, perms)
	if err != nil {
		return err
	}
	return s.seedUsers(ctx, db, roles)
}

func (s *AuthSeeder) seedPermissions(ctx context.Context, db *gorm.DB) (map[string]*domain.Permission, error) {
	perms := make(map[string]*domain.Permission, len(authResources)*len(authActions))
	for _, resource := range authResources {
		for _, action := range authActions {
			perm := &domain.Permission{
				Resource:    resource,
				Action:      action,
				Description: fmt.Sprintf("Can %s %s", action, resource),
			}
			key := map[string]interface{}{"resource": resource, "action": action}
			if err := Upsert(ctx, db, perm, key, "description"); err != nil {
				return nil, fmt.Errorf("permission %s: %w", perm.Key(), err)
			}
			perms[perm.Key()] = perm
		}
	}
	return perms, nil
}

func (s *AuthSeeder) seedRoles(ctx context.Context, db *gorm.DB, perms map[string]*domain.Permission) (map[string]*domain.Role, error) {
	roles := make(map[string]*domain.Role, len(authRoles))
	for _, def := range authRoles {
		role := &domain.Role{Name: def.Name, Description: def.Description}
		if err := Upsert(ctx, db, role, map[string]interface{}{"name": def.Name}, "description"); err != nil {
			return nil, fmt.Errorf("role %s: %w", def.Name, err)
		}
		roles[def.Name] = role

		granted := def.Permissions
		if granted == nil {
			// nil grants everything
			for k := range perms {
				granted = append(granted, k)
			}
		}
		for _, k := range granted {
			perm, ok := perms[k]
			if !ok {
				return nil, fmt.Errorf("role %s: unknown permission %s", def.Name, k)
			}
			if err := Link(ctx, db, &domain.RolePermission{RoleID: role.ID, PermissionID: perm.ID}); err != nil {
				return nil, fmt.Errorf("role %s permission %s: %w", def.Name, k, err)
			}
		}
	}
	return roles, nil
}

func (s *AuthSeeder) seedUsers(ctx context.Context, db *gorm.DB, roles map[string]*domain.Role) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	for _, def := range authUsers {
		user := &domain.User{
			Email:        def.Email,
			Name:         def.Name,
			PasswordHash: string(hash),
			RoleID:       roles[def.Role].ID,
			IsActive:     true,
		}
		// password_hash is left out so reruns keep existing credentials
		if err := Upsert(ctx, db, user, map[string]interface{}{"email": def.Email}, "name", "role_id", "is_active"); err != nil {
			return fmt.Errorf("user %s: %w", def.Email, err)
		}
	}
	return nil
}
