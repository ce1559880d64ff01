package customers

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/sangkips/customer-service/internal/db"
	"github.com/sangkips/customer-service/internal/domains/customers/models"
)

func TestRepository_Lifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	conn := connectTestDB(t)
	defer conn.Close()

	tx := setupTestTx(t, conn)
	defer tx.Rollback()

	ctx := context.Background()
	repo := NewRepository(tx, zerolog.Nop())

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("Expected empty non-nil slice, got %#v", all)
	}

	created, err := repo.Insert(ctx, models.Customer{ID: 12345, FirstName: "Jane", LastName: "Doe"})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if created.ID == 0 || created.ID == 12345 {
		t.Errorf("Expected a store assigned id, got %d", created.ID)
	}

	got, found, err := repo.GetByID(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("GetByID: expected found, got (%v, %v)", found, err)
	}
	if got != created {
		t.Errorf("Expected %+v, got %+v", created, got)
	}

	modified, found, err := repo.Modify(ctx, models.Customer{ID: created.ID, FirstName: "A", LastName: "B"})
	if err != nil || !found {
		t.Fatalf("Modify: expected found, got (%v, %v)", found, err)
	}
	if modified != (models.Customer{ID: created.ID, FirstName: "A", LastName: "B"}) {
		t.Errorf("Unexpected modified record %+v", modified)
	}

	deleted, err := repo.Delete(ctx, created.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete: expected true, got (%v, %v)", deleted, err)
	}

	deleted, err = repo.Delete(ctx, created.ID)
	if err != nil || deleted {
		t.Fatalf("Second delete: expected false, got (%v, %v)", deleted, err)
	}
}

func TestRepository_MissingIDs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	conn := connectTestDB(t)
	defer conn.Close()

	tx := setupTestTx(t, conn)
	defer tx.Rollback()

	ctx := context.Background()
	repo := NewRepository(tx, zerolog.Nop())

	if _, found, err := repo.GetByID(ctx, 999999); err != nil || found {
		t.Errorf("GetByID: expected (false, nil), got (%v, %v)", found, err)
	}
	if _, found, err := repo.Modify(ctx, models.Customer{ID: 999999, FirstName: "A", LastName: "B"}); err != nil || found {
		t.Errorf("Modify: expected (false, nil), got (%v, %v)", found, err)
	}
	if deleted, err := repo.Delete(ctx, 999999); err != nil || deleted {
		t.Errorf("Delete: expected (false, nil), got (%v, %v)", deleted, err)
	}
}

func connectTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DB_URL")
		if dbURL == "" {
			t.Skip("TEST_DATABASE_URL or DB_URL not set, skipping integration test")
		}
	}

	if err := db.Migrate(context.Background(), dbURL, zerolog.Nop()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := conn.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	return conn
}

func setupTestTx(t *testing.T, conn *sql.DB) *sql.Tx {
	t.Helper()

	tx, err := conn.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	if _, err := tx.Exec("DELETE FROM customers"); err != nil {
		t.Fatalf("Failed to clean up customers: %v", err)
	}

	return tx
}
