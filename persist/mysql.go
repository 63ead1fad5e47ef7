package persist

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"

	"roadwatch/common"
)

// SQLStore keeps key/value pairs in a MySQL table, for installations that
// share the local cache between devices of one account.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// OpenSQLStore connects with the flag-configured credentials and makes sure
// the table exists.
func OpenSQLStore(ctx context.Context) (*SQLStore, error) {
	db, err := common.DBConnect()
	if err != nil {
		return nil, err
	}
	s := NewSQLStore(db)
	if err := s.CreateTable(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) CreateTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
	  k VARCHAR(128) NOT NULL PRIMARY KEY,
	  v MEDIUMTEXT NOT NULL,
	  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`)
	return err
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT v FROM kv WHERE k = ?`, key)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	// Take only the first row. Duplicates are not expected.
	if !rows.Next() {
		return "", ErrNotFound
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	result, err := s.db.ExecContext(ctx, `INSERT INTO kv (k, v) VALUES (?, ?)
	                        ON DUPLICATE KEY UPDATE v=?`,
		key, value, value)
	common.LogResult("persist.Set", result, err, false)
	return err
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, key)
	common.LogResult("persist.Delete", result, err, false)
	return err
}
