package sqlframe

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config 连接配置。每个连接目标构造一个Config值，同一进程可以
// 持有多个各自独立配置的客户端实例，不依赖任何进程级全局状态。
type Config struct {
	Driver   string `json:"driver"` // postgres（默认）/ mysql / sqlite3
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"dbname"`
	User     string `json:"user"`
	Password string `json:"password"`
	SSLMode  string `json:"sslmode"`
	DSN      string `json:"dsn"` // 非空时直接作为连接串，忽略上面字段
}

// DefaultConfig 默认连接配置
func DefaultConfig() *Config {
	return &Config{
		Driver:  "postgres",
		Host:    "localhost",
		Port:    5432,
		SSLMode: "disable",
	}
}

// dsn 构造驱动连接串
func (c *Config) dsn(dialect Dialect) string {
	if c.DSN != "" {
		return c.DSN
	}
	switch dialect.Name() {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	case "sqlite":
		return c.DBName
	default:
		return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
			c.Host, c.Port, c.DBName, c.User, c.Password, c.SSLMode)
	}
}

// Client SQL数据访问客户端。一个实例最多持有一条活动连接：
// 首次使用时懒建连，每次访问先探活，连接失效则透明重连。
// 同步阻塞模型，内部无并发调度；实例间互不共享状态。
type Client struct {
	mu         sync.Mutex
	config     *Config
	dialect    Dialect
	db         *sql.DB
	tx         *sql.Tx // AutoCommit关闭时持有的会话事务
	autoCommit bool
	reporter   MetricsReporter
	cache      QueryCache
	cacheTTL   time.Duration
	cacheScope string // 缓存key前缀：方言+连接串摘要，隔离指向不同数据库的客户端
}

// NewClient 创建客户端。不立即建连，首个操作触发懒连接。
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	dialect, err := dialectByName(config.Driver)
	if err != nil {
		return nil, err
	}
	digest := fnv.New32a()
	_, _ = digest.Write([]byte(config.dsn(dialect)))
	return &Client{
		config:     config,
		dialect:    dialect,
		autoCommit: true,
		reporter:   NoopMetricsReporter{},
		cacheScope: fmt.Sprintf("%s:%08x", dialect.Name(), digest.Sum32()),
	}, nil
}

// WithMetricsReporter 设置监控报告器（链式调用）；传nil退回空实现
func (c *Client) WithMetricsReporter(reporter MetricsReporter) *Client {
	if reporter == nil {
		reporter = NoopMetricsReporter{}
	}
	c.reporter = reporter
	return c
}

// WithQueryCache 启用单SELECT查询的结果缓存（链式调用）
func (c *Client) WithQueryCache(cache QueryCache, ttl time.Duration) *Client {
	c.cache = cache
	c.cacheTTL = ttl
	return c
}

// WithAutoCommit 开关自动提交。关闭后语句在持有的会话事务内执行，
// 由调用方通过Commit/Rollback收尾。
func (c *Client) WithAutoCommit(enabled bool) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoCommit = enabled
	return c
}

// Dialect 当前方言
func (c *Client) Dialect() Dialect {
	return c.dialect
}

// conn 获取活动连接：没有则新建，已有则探活，失效重建。
// 连接池容量固定为1，保证单连接语义。调用方需持有c.mu。
func (c *Client) conn(ctx context.Context) (*sql.DB, error) {
	if c.db != nil {
		// 活跃的会话事务占着池里唯一的连接：此时探活必然在连接池上
		// 自我阻塞，事务本身就证明连接可用，直接复用；事务失效由
		// 后续语句或Commit/Rollback的错误上抛，不在这里静默丢弃。
		if c.tx != nil {
			return c.db, nil
		}
		if err := c.db.PingContext(ctx); err == nil {
			return c.db, nil
		}
		_ = c.db.Close()
		c.db = nil
	}

	db, err := sql.Open(c.dialect.DriverName(), c.config.dsn(c.dialect))
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &ConnectionError{Err: err}
	}
	c.db = db
	return db, nil
}

// sessionTx AutoCommit关闭时懒启动会话事务。调用方需持有c.mu。
func (c *Client) sessionTx(ctx context.Context, db *sql.DB) (*sql.Tx, error) {
	if c.tx != nil {
		return c.tx, nil
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlframe: begin transaction: %w", err)
	}
	c.tx = tx
	return tx, nil
}

// Commit 提交AutoCommit关闭时累积的会话事务；没有挂起事务时为空操作
func (c *Client) Commit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx == nil {
		return nil
	}
	err := c.tx.Commit()
	c.tx = nil
	return err
}

// Rollback 回滚挂起的会话事务；没有挂起事务时为空操作
func (c *Client) Rollback() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback()
	c.tx = nil
	return err
}

// Close 关闭连接。尽力提交挂起事务后关闭，可重复调用；
// 关闭后再发起操作会走懒重连路径而不是报错。
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx != nil {
		_ = c.tx.Commit()
		c.tx = nil
	}
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
