package sqlframe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// execer 语句执行目标：自动提交模式下是连接本身，手动模式下是会话事务
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Query 执行任意SQL（单条或多条语句，按分号切分）。
// 多条语句在同一事务内按序执行，任一条失败则整体回滚并返回带
// 1基语句序号的QueryError。只返回最后一条语句的结果：最后一条产生
// 行描述时返回Frame，否则返回(nil, nil)。空输入不触碰连接。
func (c *Client) Query(ctx context.Context, sqlText string) (*Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	statements := SplitStatements(sqlText)
	if len(statements) == 0 {
		return nil, nil
	}

	cacheable := c.cache != nil && c.autoCommit && len(statements) == 1 && isSelect(statements[0])
	var cacheKey string
	if cacheable {
		cacheKey = c.cacheScope + ":" + statements[0]
		if encoded, ok := c.cache.Get(ctx, cacheKey); ok {
			frame := &Frame{}
			if err := frame.GobDecode(encoded); err == nil {
				return frame, nil
			}
		}
	}

	startTime := time.Now()
	frame, err := c.execStatements(ctx, statements)
	c.reporter.RecordQuery(len(statements), time.Since(startTime), err)
	if err != nil {
		return nil, err
	}

	if cacheable && frame != nil {
		if encoded, encErr := frame.GobEncode(); encErr == nil {
			c.cache.Set(ctx, cacheKey, encoded, c.cacheTTL)
		}
	}
	return frame, nil
}

// execStatements 执行已切分的语句序列。调用方需持有c.mu。
func (c *Client) execStatements(ctx context.Context, statements []string) (*Frame, error) {
	db, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}

	// 手动提交模式：全部语句进入持有的会话事务，由调用方收尾
	if !c.autoCommit {
		tx, err := c.sessionTx(ctx, db)
		if err != nil {
			return nil, err
		}
		return runStatements(ctx, tx, statements)
	}

	if len(statements) == 1 {
		frame, err := queryStatement(ctx, db, statements[0])
		if err != nil {
			return nil, &QueryError{Statement: 1, Err: err}
		}
		return frame, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlframe: begin transaction: %w", err)
	}
	frame, err := runStatements(ctx, tx, statements)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, &QueryError{Statement: len(statements), Err: err}
	}
	return frame, nil
}

// runStatements 按序执行语句；只有最后一条语句的结果被保留，
// 中间语句的结果（如有）直接丢弃。
func runStatements(ctx context.Context, target execer, statements []string) (*Frame, error) {
	var frame *Frame
	for i, stmt := range statements {
		if i == len(statements)-1 {
			f, err := queryStatement(ctx, target, stmt)
			if err != nil {
				return nil, &QueryError{Statement: i + 1, Err: err}
			}
			frame = f
			continue
		}
		if _, err := target.ExecContext(ctx, stmt); err != nil {
			return nil, &QueryError{Statement: i + 1, Err: err}
		}
	}
	return frame, nil
}

// queryStatement 执行单条语句并物化结果
func queryStatement(ctx context.Context, target execer, stmt string) (*Frame, error) {
	rows, err := target.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return frameFromRows(rows)
}

// frameFromRows 把结果游标整体物化为Frame；没有行描述时返回nil
func frameFromRows(rows *sql.Rows) (*Frame, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		// 无行描述的语句（DDL/DML）。部分驱动（SQLite）要等游标步进
		// 才真正执行语句，这里空转一遍再丢弃。
		for rows.Next() {
		}
		return nil, rows.Err()
	}

	frame := NewFrame(columns...)
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		row := make([]any, len(columns))
		for i, v := range values {
			// 驱动返回的[]byte缓冲区会被复用，转成string持有
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			} else {
				row[i] = v
			}
		}
		if err := frame.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return frame, rows.Err()
}

// target 参数化执行目标。调用方需持有c.mu。
func (c *Client) target(ctx context.Context) (execer, error) {
	db, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}
	if !c.autoCommit {
		return c.sessionTx(ctx, db)
	}
	return db, nil
}

// rawQuery 单条参数化查询，物化为Frame。调用方需持有c.mu。
func (c *Client) rawQuery(ctx context.Context, query string, args ...any) (*Frame, error) {
	target, err := c.target(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := target.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return frameFromRows(rows)
}

// rawExec 单条参数化执行。调用方需持有c.mu。
func (c *Client) rawExec(ctx context.Context, query string, args ...any) error {
	target, err := c.target(ctx)
	if err != nil {
		return err
	}
	_, err = target.ExecContext(ctx, query, args...)
	return err
}

// rawExists 参数化存在性检查：查询返回至少一行即为true。调用方需持有c.mu。
func (c *Client) rawExists(ctx context.Context, query string, args ...any) (bool, error) {
	target, err := c.target(ctx)
	if err != nil {
		return false, err
	}
	rows, err := target.QueryContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	if rows.Next() {
		return true, nil
	}
	return false, rows.Err()
}

// isSelect 判断语句是否为SELECT（用于结果缓存判定）
func isSelect(stmt string) bool {
	head := strings.ToUpper(strings.TrimSpace(stmt))
	return strings.HasPrefix(head, "SELECT") || strings.HasPrefix(head, "WITH")
}
