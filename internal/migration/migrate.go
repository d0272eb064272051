package migration

import (
	"context"
	"fmt"

	"github.com/starterkit/render-starter/internal/domain"
	pkglogger "github.com/starterkit/render-starter/pkg/logger"
	"gorm.io/gorm"
)

// Schema names accepted by Run
const (
	SchemaAuth = "auth"
	SchemaBlog = "blog"
)

// AuthModels are the tables of the auth schema, parents first
func AuthModels() []interface{} {
	return []interface{}{
		&domain.Permission{},
		&domain.Role{},
		&domain.RolePermission{},
		&domain.User{},
	}
}

// BlogModels are the tables of the blog schema, parents first
func BlogModels() []interface{} {
	return []interface{}{
		&domain.Author{},
		&domain.Category{},
		&domain.Tag{},
		&domain.Post{},
		&domain.PostTag{},
		&domain.Comment{},
	}
}

// Run executes AutoMigrate for the requested schemas.
// This is safe to run multiple times (AutoMigrate is idempotent).
func Run(ctx context.Context, db *gorm.DB, schemas ...string) error {
	for _, schema := range schemas {
		var models []interface{}
		switch schema {
		case SchemaAuth:
			models = AuthModels()
		case SchemaBlog:
			models = BlogModels()
		default:
			return fmt.Errorf("unknown schema %q", schema)
		}
		if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
			return fmt.Errorf("migrate %s schema: %w", schema, err)
		}
		pkglogger.Debug("[migrate] %s schema up to date (%d tables)", schema, len(models))
	}
	return nil
}
