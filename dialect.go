package sqlframe

import (
	"fmt"
	"strings"
	"sync"
)

// Dialect 数据库特定的SQL生成器接口：占位符、目录内省查询、
// schema/truncate语义的差异都集中在这里。
type Dialect interface {
	// Name 方言名称
	Name() string

	// DriverName database/sql驱动注册名
	DriverName() string

	// Placeholders 生成多行插入的占位符段，如 "($1, $2), ($3, $4)"
	Placeholders(columnCount, rowCount int) string

	// SupportsSchemas 是否支持命名schema（SQLite不支持）
	SupportsSchemas() bool

	// QualifyTable 渲染完整表引用（标识符已转义）
	QualifyTable(schema, table string) string

	// ColumnType 把推断出的类型关键字映射为方言可接受的声明
	ColumnType(inferred string) string

	// TruncateTableSQL 清空表的语句
	TruncateTableSQL(schema, table string) string

	// 目录内省查询：schema/表名走绑定参数，不拼接进SQL文本
	SchemaExistsSQL() string
	TableExistsSQL() string
	ListSchemasSQL() string
	ListTablesSQL() string
	DescribeTableSQL() string
}

var DefaultPostgresDialect = NewPostgresDialect()

// PostgresDialect PostgreSQL方言（默认）
type PostgresDialect struct {
	placeholders sync.Map // key: (colCount<<32)|rowCount  value: string
}

func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

func (d *PostgresDialect) Name() string       { return "postgresql" }
func (d *PostgresDialect) DriverName() string { return "postgres" }

// Placeholders 生成PostgreSQL风格的$n占位符段
func (d *PostgresDialect) Placeholders(columnCount, rowCount int) string {
	if columnCount <= 0 || rowCount <= 0 {
		return ""
	}
	key := (uint64(columnCount) << 32) | uint64(rowCount)
	if v, ok := d.placeholders.Load(key); ok {
		return v.(string)
	}
	rows := make([]string, rowCount)
	for i := 0; i < rowCount; i++ {
		ph := make([]string, columnCount)
		for j := 0; j < columnCount; j++ {
			ph[j] = fmt.Sprintf("$%d", i*columnCount+j+1)
		}
		rows[i] = "(" + strings.Join(ph, ", ") + ")"
	}
	out := strings.Join(rows, ", ")
	d.placeholders.Store(key, out)
	return out
}

func (d *PostgresDialect) SupportsSchemas() bool { return true }

func (d *PostgresDialect) QualifyTable(schema, table string) string {
	return quoteQualified(schema, table)
}

func (d *PostgresDialect) ColumnType(inferred string) string { return inferred }

func (d *PostgresDialect) TruncateTableSQL(schema, table string) string {
	return "TRUNCATE TABLE " + d.QualifyTable(schema, table)
}

func (d *PostgresDialect) SchemaExistsSQL() string {
	return "SELECT 1 FROM information_schema.schemata WHERE schema_name = $1"
}

func (d *PostgresDialect) TableExistsSQL() string {
	return "SELECT 1 FROM information_schema.tables WHERE table_schema = $1 AND table_name = $2"
}

func (d *PostgresDialect) ListSchemasSQL() string {
	return "SELECT schema_name FROM information_schema.schemata ORDER BY schema_name"
}

func (d *PostgresDialect) ListTablesSQL() string {
	return "SELECT table_name FROM information_schema.tables WHERE table_schema = $1 ORDER BY table_name"
}

func (d *PostgresDialect) DescribeTableSQL() string {
	return "SELECT column_name, data_type, is_nullable, character_maximum_length " +
		"FROM information_schema.columns WHERE table_schema = $1 AND table_name = $2 " +
		"ORDER BY ordinal_position"
}

var DefaultMySQLDialect = NewMySQLDialect()

// MySQLDialect MySQL方言
type MySQLDialect struct {
	placeholders sync.Map // key: (colCount<<32)|rowCount  value: string
}

func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) Name() string       { return "mysql" }
func (d *MySQLDialect) DriverName() string { return "mysql" }

// Placeholders 生成MySQL风格的?占位符段
func (d *MySQLDialect) Placeholders(columnCount, rowCount int) string {
	if columnCount <= 0 || rowCount <= 0 {
		return ""
	}
	key := (uint64(columnCount) << 32) | uint64(rowCount)
	if v, ok := d.placeholders.Load(key); ok {
		return v.(string)
	}
	singleRow := "(" + strings.Repeat("?, ", columnCount-1) + "?)"
	rows := make([]string, rowCount)
	for i := range rows {
		rows[i] = singleRow
	}
	out := strings.Join(rows, ", ")
	d.placeholders.Store(key, out)
	return out
}

func (d *MySQLDialect) SupportsSchemas() bool { return true }

func (d *MySQLDialect) QualifyTable(schema, table string) string {
	return quoteQualified(schema, table)
}

// ColumnType MySQL不认识带时区的时间戳声明，降级为TIMESTAMP
func (d *MySQLDialect) ColumnType(inferred string) string {
	if inferred == TypeTimestampTZ {
		return TypeTimestamp
	}
	return inferred
}

func (d *MySQLDialect) TruncateTableSQL(schema, table string) string {
	return "TRUNCATE TABLE " + d.QualifyTable(schema, table)
}

func (d *MySQLDialect) SchemaExistsSQL() string {
	return "SELECT 1 FROM information_schema.schemata WHERE schema_name = ?"
}

func (d *MySQLDialect) TableExistsSQL() string {
	return "SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
}

func (d *MySQLDialect) ListSchemasSQL() string {
	return "SELECT schema_name FROM information_schema.schemata ORDER BY schema_name"
}

func (d *MySQLDialect) ListTablesSQL() string {
	return "SELECT table_name FROM information_schema.tables WHERE table_schema = ? ORDER BY table_name"
}

func (d *MySQLDialect) DescribeTableSQL() string {
	return "SELECT column_name, data_type, is_nullable, character_maximum_length " +
		"FROM information_schema.columns WHERE table_schema = ? AND table_name = ? " +
		"ORDER BY ordinal_position"
}

var DefaultSQLiteDialect = NewSQLiteDialect()

// SQLiteDialect SQLite方言。没有命名schema：限定名里的schema部分
// 解析后被忽略，目录查询走sqlite_master与pragma_table_info。
type SQLiteDialect struct {
	placeholders sync.Map // key: (colCount<<32)|rowCount  value: string
}

func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) Name() string       { return "sqlite" }
func (d *SQLiteDialect) DriverName() string { return "sqlite3" }

// Placeholders 生成SQLite风格的?占位符段
func (d *SQLiteDialect) Placeholders(columnCount, rowCount int) string {
	if columnCount <= 0 || rowCount <= 0 {
		return ""
	}
	key := (uint64(columnCount) << 32) | uint64(rowCount)
	if v, ok := d.placeholders.Load(key); ok {
		return v.(string)
	}
	singleRow := "(" + strings.Repeat("?, ", columnCount-1) + "?)"
	rows := make([]string, rowCount)
	for i := range rows {
		rows[i] = singleRow
	}
	out := strings.Join(rows, ", ")
	d.placeholders.Store(key, out)
	return out
}

func (d *SQLiteDialect) SupportsSchemas() bool { return false }

func (d *SQLiteDialect) QualifyTable(schema, table string) string {
	return QuoteIdentifier(table)
}

func (d *SQLiteDialect) ColumnType(inferred string) string { return inferred }

// TruncateTableSQL SQLite没有TRUNCATE，用DELETE清空
func (d *SQLiteDialect) TruncateTableSQL(schema, table string) string {
	return "DELETE FROM " + QuoteIdentifier(table)
}

func (d *SQLiteDialect) SchemaExistsSQL() string {
	return "SELECT 1 WHERE ? IN ('public', 'main')"
}

func (d *SQLiteDialect) TableExistsSQL() string {
	return "SELECT 1 FROM sqlite_master WHERE ? IS NOT NULL AND type = 'table' AND name = ?"
}

func (d *SQLiteDialect) ListSchemasSQL() string {
	return "SELECT 'main' AS schema_name"
}

func (d *SQLiteDialect) ListTablesSQL() string {
	return "SELECT name AS table_name FROM sqlite_master WHERE ? IS NOT NULL AND type = 'table' ORDER BY name"
}

func (d *SQLiteDialect) DescribeTableSQL() string {
	return "SELECT name AS column_name, type AS data_type, " +
		"CASE WHEN \"notnull\" = 0 THEN 'YES' ELSE 'NO' END AS is_nullable, " +
		"NULL AS character_maximum_length " +
		"FROM pragma_table_info(?2) ORDER BY cid"
}

// dialectByName 按驱动名选择方言
func dialectByName(name string) (Dialect, error) {
	switch name {
	case "", "postgres", "postgresql":
		return DefaultPostgresDialect, nil
	case "mysql":
		return DefaultMySQLDialect, nil
	case "sqlite", "sqlite3":
		return DefaultSQLiteDialect, nil
	default:
		return nil, fmt.Errorf("sqlframe: unsupported driver %q", name)
	}
}
