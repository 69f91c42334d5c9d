package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Tests are skipped
// when no local MySQL named 'orders_test' is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/orders_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"Items", "`Order`"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the two-table schema. Items intentionally
// has no primary key and no foreign-key cascade: the repository owns
// the cascade.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrderTable := "CREATE TABLE IF NOT EXISTS `Order` (" + `
		orderId VARCHAR(64) NOT NULL PRIMARY KEY,
		value DECIMAL(12,2) NOT NULL,
		creationDate DATETIME(3) NOT NULL
	)`

	createItemsTable := `
	CREATE TABLE IF NOT EXISTS Items (
		orderId VARCHAR(64) NOT NULL,
		productId INT NOT NULL,
		quantity DECIMAL(12,2) NOT NULL,
		price DECIMAL(12,2) NOT NULL,
		INDEX idx_order (orderId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Order", createOrderTable},
		{"Items", createItemsTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
