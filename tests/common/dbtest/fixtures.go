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

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestDesigner(t *testing.T, db DBLike, name string, openMinute, closeMinute int) uuid.UUID {
	t.Helper()

	designerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO designers (id, name, active, open_minute, close_minute) VALUES ($1, $2, true, $3, $4)",
		designerID, name, openMinute, closeMinute)
	require.NoError(t, err)

	return designerID
}

func CreateTestService(t *testing.T, db DBLike, name string, durationMin int, priceCents int64) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO services (id, name, duration_min, price_cents, active) VALUES ($1, $2, $3, $4, true)",
		serviceID, name, durationMin, priceCents)
	require.NoError(t, err)

	return serviceID
}

func LinkDesignerService(t *testing.T, db DBLike, designerID, serviceID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO designer_services (designer_id, service_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		designerID, serviceID)
	require.NoError(t, err)
}

func CloseDesignerDate(t *testing.T, db DBLike, designerID uuid.UUID, date time.Time) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO designer_closed_dates (designer_id, closed_on) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		designerID, date.Format("2006-01-02"))
	require.NoError(t, err)
}

func CreateTestPass(t *testing.T, db DBLike, customerID uuid.UUID, expiry time.Time, totalQty int, monthlyCap *int) (passID, itemID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	definitionID := uuid.New()
	itemID = uuid.New()
	passID = uuid.New()

	_, err := db.Exec(ctx, "INSERT INTO pass_definitions (id, name, variant_name) VALUES ($1, 'Cut Pass', 'standard')", definitionID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO pass_content_items (id, pass_id, category, total_qty, monthly_cap) VALUES ($1, $2, 'benefit', $3, $4)",
		itemID, definitionID, totalQty, monthlyCap)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO active_passes (id, customer_id, pass_id, purchase_date, expiry_date) VALUES ($1, $2, $3, now(), $4)",
		passID, customerID, definitionID, expiry)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO active_pass_usages (active_pass_id, content_item_id, remaining) VALUES ($1, $2, $3)",
		passID, itemID, totalQty)
	require.NoError(t, err)

	return passID, itemID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Insert admin account used by status transition tests
	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, role) VALUES
		    (gen_random_uuid(), 'admin@example.com', 'admin')
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
