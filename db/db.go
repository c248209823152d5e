package db

import (
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Database 可选的数据库协作方，诊断端点通过该接口探测而不直接依赖具体实现
type Database interface {
	IsAvailable() bool
	Name() string
	ListCollections() ([]string, error)
}

// SQLiteDatabase 基于 SQLite 的 Database 实现
type SQLiteDatabase struct {
	conn *sql.DB
	name string
}

// Open 打开数据库连接
// name 为空时从文件路径推导数据库名
func Open(dbPath, name string) (*SQLiteDatabase, error) {
	// 使用 DSN 参数配置 WAL 模式和超时，确保连接池中的所有连接都生效
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// 限制连接数以避免在极高并发下触发 SQLite 锁定
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(dbPath), filepath.Ext(dbPath))
	}

	return &SQLiteDatabase{conn: conn, name: name}, nil
}

// IsAvailable 连接是否可用
func (d *SQLiteDatabase) IsAvailable() bool {
	if d == nil || d.conn == nil {
		return false
	}
	return d.conn.Ping() == nil
}

// Name 数据库名称
func (d *SQLiteDatabase) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// ListCollections 列出所有表名（验证连通性）
func (d *SQLiteDatabase) ListCollections() ([]string, error) {
	rows, err := d.conn.Query(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		collections = append(collections, name)
	}

	return collections, rows.Err()
}

// Close 关闭数据库连接
func (d *SQLiteDatabase) Close() error {
	if d == nil || d.conn == nil {
		return nil
	}
	return d.conn.Close()
}
