package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		user_type TEXT NOT NULL,
		phone TEXT,
		address TEXT,
		city TEXT,
		state TEXT,
		zip_code TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAutoPartTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE auto_parts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seller_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		condition TEXT NOT NULL,
		price TEXT NOT NULL,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		part_number TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPartImageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE part_images (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		part_id INTEGER NOT NULL,
		image_url TEXT NOT NULL,
		is_primary BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createInquiryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE buyer_inquiries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		buyer_id INTEGER NOT NULL,
		seller_id INTEGER NOT NULL,
		part_id INTEGER NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createFinancingTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE financing_options (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		provider_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		min_amount TEXT NOT NULL,
		max_amount TEXT NOT NULL,
		interest_rate TEXT NOT NULL,
		term_months INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE financing_applications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		buyer_id INTEGER NOT NULL,
		provider_id INTEGER NOT NULL,
		part_id INTEGER NOT NULL,
		financing_option_id INTEGER NOT NULL,
		requested_amount TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		application_data TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func insertPartRow(t *testing.T, db *gorm.DB, sellerID int64, title, category, condition, price, mk, model string, year int, active bool, createdAt time.Time) {
	t.Helper()
	mustExec(t, db, `INSERT INTO auto_parts
		(seller_id, title, description, category, condition, price, make, model, year, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sellerID, title, "desc", category, condition, price, mk, model, year, active, createdAt, createdAt)
}
