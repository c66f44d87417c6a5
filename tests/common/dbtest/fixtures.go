//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultHostEmail = "host@slotwise.test"

// CreateTestHost inserts a host row and returns its ID. Hosts are the FK root
// for schedules, event types, and bookings, so every e2e scenario starts here.
func CreateTestHost(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	hostID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO hosts (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		hostID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM hosts WHERE email = $1", email).Scan(&hostID)
	}

	return hostID
}

// DefaultHostID returns the ID of the seeded default host.
func DefaultHostID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var hostID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM hosts WHERE email = $1", DefaultHostEmail).Scan(&hostID)
	require.NoError(t, err)
	return hostID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hosts (id, name, email) VALUES
		    (gen_random_uuid(), 'Default Host', '`+DefaultHostEmail+`')
		ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
