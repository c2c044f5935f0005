package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/schema"
	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const cacheTableName = "codescout_cache"

// CacheStoreImpl stores fetched API payloads keyed by cache key, with a
// version and timestamp used for day-bounded freshness checks.
type CacheStoreImpl struct {
	backend   schema.DatabaseBackend
	tableName string
	connect   string
	db        *sql.DB
}

var _ contract.CacheStore = &CacheStoreImpl{} // Compile-time check

// NewCacheStore creates a cache store for the given backend.
func NewCacheStore(backend schema.DatabaseBackend, connect string) (*CacheStoreImpl, error) {
	store := &CacheStoreImpl{backend: backend, tableName: cacheTableName, connect: connect}

	switch backend {
	case schema.SQLiteBackend:
		db, err := sql.Open("sqlite", contract.GetCacheDBFilePath())
		if err != nil {
			return nil, fmt.Errorf("cannot open SQLite cache: %w", err)
		}
		db.SetMaxOpenConns(1) // Avoids SQLITE_BUSY errors
		store.db = db
	case schema.MySQLBackend:
		db, err := sql.Open("mysql", connect)
		if err != nil {
			return nil, fmt.Errorf("cannot open MySQL cache: %w", err)
		}
		store.db = db
	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connect)
		if err != nil {
			return nil, fmt.Errorf("cannot open Postgres cache: %w", err)
		}
		store.db = db
	case schema.NoneBackend:
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", backend)
	}

	if err := store.createTable(); err != nil {
		_ = store.db.Close()
		return nil, err
	}
	return store, nil
}

func (c *CacheStoreImpl) createTable() error {
	quoted, err := quoteTableName(c.backend, c.tableName)
	if err != nil {
		return err
	}

	var query string
	switch c.backend {
	case schema.MySQLBackend:
		query = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			cache_key VARCHAR(255) PRIMARY KEY,
			cache_value LONGBLOB NOT NULL,
			cache_version INT NOT NULL,
			cache_timestamp BIGINT NOT NULL
		)`, quoted)
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			cache_key TEXT PRIMARY KEY,
			cache_value BYTEA NOT NULL,
			cache_version INTEGER NOT NULL,
			cache_timestamp BIGINT NOT NULL
		)`, quoted)
	default:
		query = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			cache_key TEXT PRIMARY KEY,
			cache_value BLOB NOT NULL,
			cache_version INTEGER NOT NULL,
			cache_timestamp INTEGER NOT NULL
		)`, quoted)
	}

	if _, err := c.db.Exec(query); err != nil {
		return fmt.Errorf("cannot create cache table: %w", err)
	}
	return nil
}

// Get returns the cached payload, version and Unix timestamp for a key.
// A missing key returns sql.ErrNoRows.
func (c *CacheStoreImpl) Get(key string) ([]byte, int, int64, error) {
	if c.backend == schema.NoneBackend {
		return nil, 0, 0, sql.ErrNoRows
	}
	quoted, err := quoteTableName(c.backend, c.tableName)
	if err != nil {
		return nil, 0, 0, err
	}

	query := fmt.Sprintf(
		"SELECT cache_value, cache_version, cache_timestamp FROM %s WHERE cache_key = %s",
		quoted, getPlaceholder(c.backend, 1))

	var value []byte
	var version int
	var timestamp int64
	if err := c.db.QueryRow(query, key).Scan(&value, &version, &timestamp); err != nil {
		return nil, 0, 0, err
	}
	return value, version, timestamp, nil
}

// Set upserts a payload under a key with its version and Unix timestamp.
func (c *CacheStoreImpl) Set(key string, value []byte, version int, timestamp int64) error {
	if c.backend == schema.NoneBackend {
		return nil
	}
	quoted, err := quoteTableName(c.backend, c.tableName)
	if err != nil {
		return err
	}

	var query string
	switch c.backend {
	case schema.MySQLBackend:
		query = fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, cache_version, cache_timestamp)
			VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE cache_value = VALUES(cache_value),
			cache_version = VALUES(cache_version), cache_timestamp = VALUES(cache_timestamp)`, quoted)
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, cache_version, cache_timestamp)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (cache_key) DO UPDATE SET cache_value = EXCLUDED.cache_value,
			cache_version = EXCLUDED.cache_version, cache_timestamp = EXCLUDED.cache_timestamp`, quoted)
	default:
		query = fmt.Sprintf(`INSERT OR REPLACE INTO %s (cache_key, cache_value, cache_version, cache_timestamp)
			VALUES (?, ?, ?, ?)`, quoted)
	}

	if _, err := c.db.Exec(query, key, value, version, timestamp); err != nil {
		return fmt.Errorf("cannot write cache entry: %w", err)
	}
	return nil
}

// Delete removes a single cache entry. Deleting a missing key is not an error.
func (c *CacheStoreImpl) Delete(key string) error {
	if c.backend == schema.NoneBackend {
		return nil
	}
	quoted, err := quoteTableName(c.backend, c.tableName)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE cache_key = %s",
		quoted, getPlaceholder(c.backend, 1))
	if _, err := c.db.Exec(query, key); err != nil {
		return fmt.Errorf("cannot delete cache entry: %w", err)
	}
	return nil
}

// GetStatus reports entry counts, timestamp bounds and estimated size.
func (c *CacheStoreImpl) GetStatus() (schema.CacheStatus, error) {
	status := schema.CacheStatus{
		Backend:   string(c.backend),
		Connected: c.db != nil,
	}
	if c.backend == schema.NoneBackend || c.db == nil {
		return status, nil
	}
	quoted, err := quoteTableName(c.backend, c.tableName)
	if err != nil {
		return status, err
	}

	var newest, oldest int64
	query := fmt.Sprintf(
		"SELECT COUNT(*), COALESCE(MAX(cache_timestamp), 0), COALESCE(MIN(cache_timestamp), 0) FROM %s", quoted)
	if err := c.db.QueryRow(query).Scan(&status.TotalEntries, &newest, &oldest); err != nil {
		return status, fmt.Errorf("cannot read cache status: %w", err)
	}
	if status.TotalEntries > 0 {
		status.LastEntryTime = time.Unix(newest, 0)
		status.OldestEntryTime = time.Unix(oldest, 0)
	}

	status.TableSizeBytes, err = c.estimateSize()
	if err != nil {
		return status, err
	}
	return status, nil
}

func (c *CacheStoreImpl) estimateSize() (int64, error) {
	switch c.backend {
	case schema.SQLiteBackend:
		info, err := os.Stat(contract.GetCacheDBFilePath())
		if err != nil {
			if os.IsNotExist(err) {
				return 0, nil
			}
			return 0, err
		}
		return info.Size(), nil
	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(c.connect)
		if err != nil {
			return 0, nil // Size is best-effort when the DSN is unavailable
		}
		var size sql.NullInt64
		query := `SELECT data_length + index_length FROM information_schema.tables
			WHERE table_schema = ? AND table_name = ?`
		if err := c.db.QueryRow(query, cfg.DBName, c.tableName).Scan(&size); err != nil {
			return 0, err
		}
		return size.Int64, nil
	case schema.PostgreSQLBackend:
		var size int64
		if err := c.db.QueryRow("SELECT pg_total_relation_size($1)", c.tableName).Scan(&size); err != nil {
			return 0, err
		}
		return size, nil
	}
	return 0, nil
}

// Close closes the underlying database connection.
func (c *CacheStoreImpl) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
