package sqlframe

import (
	"context"
	"fmt"
	"strings"
)

// SchemaExists 检查schema是否存在（目录内省，名称走绑定参数）
func (c *Client) SchemaExists(ctx context.Context, name string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.schemaExists(ctx, name)
}

// schemaExists 调用方需持有c.mu
func (c *Client) schemaExists(ctx context.Context, name string) (bool, error) {
	return c.rawExists(ctx, c.dialect.SchemaExistsSQL(), name)
}

// CreateSchema 创建schema（已存在则为空操作）。
// 不支持schema的方言（SQLite）上是空操作。
func (c *Client) CreateSchema(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createSchema(ctx, name)
}

// createSchema 调用方需持有c.mu
func (c *Client) createSchema(ctx context.Context, name string) error {
	if !c.dialect.SupportsSchemas() {
		return nil
	}
	return c.rawExec(ctx, "CREATE SCHEMA IF NOT EXISTS "+QuoteIdentifier(name))
}

// DropSchema 删除schema；cascade为true时连带删除其中的对象
func (c *Client) DropSchema(ctx context.Context, name string, cascade bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dialect.SupportsSchemas() {
		return nil
	}
	stmt := "DROP SCHEMA IF EXISTS " + QuoteIdentifier(name)
	if cascade {
		stmt += " CASCADE"
	}
	return c.rawExec(ctx, stmt)
}

// ListSchemas 列出全部schema，返回单列schema_name的Frame
func (c *Client) ListSchemas(ctx context.Context) (*Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rawQuery(ctx, c.dialect.ListSchemasSQL())
}

// ListTables 列出指定schema下的表，schema留空取public
func (c *Client) ListTables(ctx context.Context, schema string) (*Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if schema == "" {
		schema = DefaultSchema
	}
	return c.rawQuery(ctx, c.dialect.ListTablesSQL(), schema)
}

// TableExists 检查表是否存在；接受 "schema.table" 或裸表名
func (c *Client) TableExists(ctx context.Context, qualifiedName string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	schema, table, err := ParseQualifiedName(qualifiedName)
	if err != nil {
		return false, err
	}
	return c.tableExists(ctx, schema, table)
}

// tableExists 调用方需持有c.mu
func (c *Client) tableExists(ctx context.Context, schema, table string) (bool, error) {
	return c.rawExists(ctx, c.dialect.TableExistsSQL(), schema, table)
}

// DescribeTable 返回表的列元数据（列名、类型、可空性、文本长度上限）
func (c *Client) DescribeTable(ctx context.Context, qualifiedName string) (*Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	schema, table, err := ParseQualifiedName(qualifiedName)
	if err != nil {
		return nil, err
	}
	return c.rawQuery(ctx, c.dialect.DescribeTableSQL(), schema, table)
}

// ensureTable 确保目标schema和表存在并处于可插入状态。
// overwrite为true且表已存在时，DROP+CREATE作为一次多语句事务化调用
// 下发，保证删旧建新原子生效。表已存在且不覆盖时按策略清空或报错。
// 调用方需持有c.mu。
func (c *Client) ensureTable(ctx context.Context, frame *Frame, schema, table string, opts *InsertOptions) error {
	if c.dialect.SupportsSchemas() {
		exists, err := c.schemaExists(ctx, schema)
		if err != nil {
			return fmt.Errorf("sqlframe: check schema %q: %w", schema, err)
		}
		if !exists {
			if err := c.createSchema(ctx, schema); err != nil {
				return fmt.Errorf("sqlframe: create schema %q: %w", schema, err)
			}
		}
	}

	exists, err := c.tableExists(ctx, schema, table)
	if err != nil {
		return fmt.Errorf("sqlframe: check table %q.%q: %w", schema, table, err)
	}

	switch {
	case exists && opts.Overwrite:
		drop := "DROP TABLE " + c.dialect.QualifyTable(schema, table)
		create := c.createTableSQL(frame, schema, table)
		_, err := c.execStatements(ctx, []string{drop, create})
		return err
	case !exists:
		_, err := c.execStatements(ctx, []string{c.createTableSQL(frame, schema, table)})
		return err
	case opts.OnExisting == ExistingError:
		return &TableExistsError{Schema: schema, Table: table}
	default:
		// 默认策略：保留表结构，清空旧数据
		_, err := c.execStatements(ctx, []string{c.dialect.TruncateTableSQL(schema, table)})
		return err
	}
}

// createTableSQL 按推断出的列类型生成建表语句，所有标识符都已转义
func (c *Client) createTableSQL(frame *Frame, schema, table string) string {
	types := InferColumnTypes(frame)
	defs := make([]string, 0, frame.NumColumns())
	for _, col := range frame.Columns() {
		defs = append(defs, QuoteIdentifier(col)+" "+c.dialect.ColumnType(types[col]))
	}
	return "CREATE TABLE " + c.dialect.QualifyTable(schema, table) +
		" (" + strings.Join(defs, ", ") + ")"
}
