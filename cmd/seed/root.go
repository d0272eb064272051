package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/starterkit/render-starter/internal/config"
	"github.com/starterkit/render-starter/internal/database"
	"github.com/starterkit/render-starter/internal/migration"
	"github.com/starterkit/render-starter/internal/seed"
	pkglogger "github.com/starterkit/render-starter/pkg/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Seed target constants
const (
	targetAll  = "all"
	targetAuth = migration.SchemaAuth
	targetBlog = migration.SchemaBlog
)

type seedOptions struct {
	migrate bool
	verify  bool
	verbose bool
}

// openDB is replaced in tests
var openDB = func(cfg config.DatabaseConfig, verbose bool) (*gorm.DB, error) {
	opts := database.DefaultOptions()
	if verbose {
		opts.LogLevel = gormlogger.Info
	}
	return database.Open(cfg, opts)
}

func newRootCmd() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed [auth|blog|all]",
		Short: "Seed reference data into the database",
		Long: `Populates the auth schema (permissions, roles, users) and the blog schema
(authors, categories, tags, posts, comments) with reference data.

Every row is upserted by its natural key, so running the command again
leaves existing rows in place.`,
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     []string{targetAuth, targetBlog, targetAll},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := targetAll
			if len(args) == 1 {
				target = args[0]
			}
			return run(cmd.Context(), cmd.OutOrStdout(), target, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.migrate, "migrate", true, "create missing tables before seeding")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "print row counts after seeding")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose SQL logging")
	return cmd
}

func schemasFor(target string) ([]string, error) {
	switch target {
	case targetAll:
		return []string{targetAuth, targetBlog}, nil
	case targetAuth, targetBlog:
		return []string{target}, nil
	default:
		return nil, fmt.Errorf("unknown target %q (want auth, blog or all)", target)
	}
}

func run(ctx context.Context, out io.Writer, target string, opts *seedOptions) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	schemas, err := schemasFor(target)
	if err != nil {
		return err
	}

	dotenvFiles, err := config.LoadDotEnv()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	pkglogger.InitStructured(cfg.Env, cfg.Log.Level)
	pkglogger.Info("NODE_ENV=%s, loaded env files: %v", cfg.Env, dotenvFiles)

	db, err := openDB(cfg.Database, opts.verbose)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		// best effort: a failed disconnect never hides the seed result
		if cerr := database.Close(db); cerr != nil {
			pkglogger.Warn("Disconnect failed: %v", cerr)
		}
	}()

	if opts.migrate {
		if err := migration.Run(ctx, db, schemas...); err != nil {
			return err
		}
	}

	seeders := make([]seed.Seeder, 0, len(schemas))
	for _, schema := range schemas {
		switch schema {
		case targetAuth:
			seeders = append(seeders, seed.NewAuthSeeder(cfg.Seed.Password))
		case targetBlog:
			seeders = append(seeders, seed.NewBlogSeeder())
		}
	}

	start := time.Now()
	if err := seed.Run(ctx, db, seeders...); err != nil {
		return err
	}
	color.New(color.FgGreen, color.Bold).Fprintf(out, "✓ Seeded %v in %v\n", schemas, time.Since(start).Round(time.Millisecond))

	if opts.verify {
		counts, err := seed.Counts(ctx, db, schemas...)
		if err != nil {
			return err
		}
		printCounts(out, counts)
	}
	return nil
}

func printCounts(out io.Writer, counts map[string]int64) {
	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	header := color.New(color.FgCyan, color.Bold)
	header.Fprintln(out, "Row counts:")
	for _, table := range tables {
		fmt.Fprintf(out, "  %-20s %d\n", table, counts[table])
	}
}
