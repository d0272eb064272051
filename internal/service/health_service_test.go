package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestReady_NoChecks(t *testing.T) {
	svc := NewHealthService(time.Now(), "1.0.0", "test")

	ready, results := svc.Ready(context.Background())

	assert.True(t, ready)
	assert.Empty(t, results)
}

func TestReady_FailingCheck(t *testing.T) {
	svc := NewHealthService(time.Now(), "1.0.0", "test")
	svc.Register("cache", func(context.Context) error { return nil })
	svc.Register("database", func(context.Context) error { return errors.New("connection refused") })

	ready, results := svc.Ready(context.Background())

	assert.False(t, ready)
	assert.Equal(t, StatusUp, results["cache"].Status)
	assert.Equal(t, StatusDown, results["database"].Status)
	assert.Equal(t, "connection refused", results["database"].Error)
	assert.Equal(t, []string{"cache", "database"}, svc.CheckNames())
}

func TestReady_CheckTimeout(t *testing.T) {
	svc := NewHealthService(time.Now(), "1.0.0", "test").WithTimeout(20 * time.Millisecond)
	svc.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ready, results := svc.Ready(context.Background())

	assert.False(t, ready)
	assert.Equal(t, context.DeadlineExceeded.Error(), results["slow"].Error)
}

func TestDetailed(t *testing.T) {
	started := time.Now().Add(-time.Minute)
	svc := NewHealthService(started, "1.2.3", "development")

	ready, details := svc.Detailed(context.Background())

	assert.True(t, ready)
	assert.Equal(t, "ok", details.Status)
	assert.Equal(t, "1.2.3", details.Version)
	assert.Equal(t, "development", details.Environment)
	assert.GreaterOrEqual(t, details.UptimeSeconds, 60.0)
	assert.Positive(t, details.Goroutines)
	assert.Positive(t, details.Memory.SysBytes)
}

func TestDatabaseCheck(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	assert.NoError(t, DatabaseCheck(db)(context.Background()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Error(t, DatabaseCheck(db)(context.Background()))
}
