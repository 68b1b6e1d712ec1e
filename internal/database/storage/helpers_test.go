package storage

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GoArmGo/AdBoard/internal/logger"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64    { return &v }

var discard = logger.Discard()
