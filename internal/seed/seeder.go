package seed

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sort"

	"github.com/starterkit/render-starter/internal/migration"
	pkglogger "github.com/starterkit/render-starter/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder populates one schema with reference data
type Seeder interface {
	Name() string
	Seed(ctx context.Context, db *gorm.DB) error
}

// Run executes seeders one after another. The first failure aborts the run.
func Run(ctx context.Context, db *gorm.DB, seeders ...Seeder) error {
	for _, s := range seeders {
		pkglogger.Info("[seed] Starting: %s", s.Name())
		if err := s.Seed(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		pkglogger.Info("[seed] Completed: %s", s.Name())
	}
	return nil
}

// Upsert inserts value or, when a row with the same key already exists,
// updates the listed columns. value is reloaded by key afterwards so its
// primary key is populated on both paths.
func Upsert(ctx context.Context, db *gorm.DB, value interface{}, key map[string]interface{}, update ...string) error {
	names := make([]string, 0, len(key))
	for name := range key {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := make([]clause.Column, len(names))
	for i, name := range names {
		columns[i] = clause.Column{Name: name}
	}

	onConflict := clause.OnConflict{Columns: columns}
	if len(update) > 0 {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(value); err != nil {
			return err
		}
		if field := stmt.Schema.LookUpField("updated_at"); field != nil && !slices.Contains(update, field.DBName) {
			update = append(update[:len(update):len(update)], field.DBName)
		}
		onConflict.DoUpdates = clause.AssignmentColumns(update)
	} else {
		onConflict.DoNothing = true
	}

	tx := db.WithContext(ctx)
	if err := tx.Clauses(onConflict).Omit(clause.Associations).Create(value).Error; err != nil {
		return err
	}

	// the id reported by the driver is unreliable when the conflict path ran
	target := reflect.ValueOf(value).Elem()
	fresh := reflect.New(target.Type())
	if err := tx.Where(key).Take(fresh.Interface()).Error; err != nil {
		return err
	}
	target.Set(fresh.Elem())
	return nil
}

// Link inserts a join row and ignores it when it already exists
func Link(ctx context.Context, db *gorm.DB, value interface{}) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(value).Error
}

// Counts returns the row count of every seeded table
func Counts(ctx context.Context, db *gorm.DB, schemas ...string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, schema := range schemas {
		var models []interface{}
		switch schema {
		case migration.SchemaAuth:
			models = migration.AuthModels()
		case migration.SchemaBlog:
			models = migration.BlogModels()
		default:
			return nil, fmt.Errorf("unknown schema %q", schema)
		}
		for _, model := range models {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(model); err != nil {
				return nil, err
			}
			var count int64
			if err := db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
				return nil, fmt.Errorf("count %s: %w", stmt.Schema.Table, err)
			}
			counts[stmt.Schema.Table] = count
		}
	}
	return counts, nil
}
