package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Zachkp/zach-dev-api/internal/model"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO required)
)

// DB is the SQLite-backed Store.
type DB struct {
	conn *gorm.DB
	sql  *sql.DB
}

var _ Store = (*DB)(nil)

// Open connects to the SQLite database at path, applies the pragmas and migrates the schema.
func Open(path string, debug bool) (*DB, error) {
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	config := &gorm.Config{
		Logger: logger.Default.LogMode(level),
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=busy_timeout(5000)&_time_format=sqlite"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, config)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// WAL lets readers proceed while the single writer holds the connection
	if err := conn.Exec("PRAGMA journal_mode = WAL;").Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if err := conn.Exec("PRAGMA synchronous = NORMAL;").Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	// One connection: every write transaction is serialized
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := conn.AutoMigrate(&model.BlogPost{}, &model.Project{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database %s ready", path)
	return &DB{conn: conn, sql: sqlDB}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.sql.Close()
}

// Stats counts records per kind and per category.
func (db *DB) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	tx := db.conn.WithContext(ctx)

	if err := tx.Model(&model.BlogPost{}).Count(&stats.TotalBlogs).Error; err != nil {
		return nil, fmt.Errorf("failed to count blogs: %w", err)
	}
	if err := tx.Model(&model.Project{}).Count(&stats.TotalProjects).Error; err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	var err error
	if stats.BlogCategories, err = categoryCounts(tx, &model.BlogPost{}); err != nil {
		return nil, fmt.Errorf("failed to count blog categories: %w", err)
	}
	if stats.ProjectCategories, err = categoryCounts(tx, &model.Project{}); err != nil {
		return nil, fmt.Errorf("failed to count project categories: %w", err)
	}
	return stats, nil
}

func categoryCounts(tx *gorm.DB, table any) (map[string]int64, error) {
	var rows []struct {
		Category string
		Total    int64
	}
	err := tx.Model(table).
		Select("category, COUNT(*) AS total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Total
	}
	return counts, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func notFound(err error, kind, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %q: %w", kind, key, ErrNotFound)
	}
	return fmt.Errorf("failed to retrieve %s %q: %w", kind, key, err)
}
