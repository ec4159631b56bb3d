package database

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// OpenTest, test için geçici dizinde migration'ları uygulanmış bir DB açar.
// Bağlantı test bitiminde kapatılır.
func OpenTest(tb testing.TB) *DB {
	tb.Helper()

	db, err := New(filepath.Join(tb.TempDir(), "test.db"), Migrations(), zerolog.Nop())
	if err != nil {
		tb.Fatalf("failed to open test database: %v", err)
	}

	tb.Cleanup(func() { _ = db.Close() })
	return db
}
