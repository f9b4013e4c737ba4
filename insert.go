package sqlframe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// DefaultBatchSize 单批最大行数默认值
const DefaultBatchSize = 1000

// ExistingTablePolicy 目标表已存在且Overwrite为false时的处置策略
type ExistingTablePolicy int

const (
	// ExistingTruncate 清空旧数据后插入（默认）
	ExistingTruncate ExistingTablePolicy = iota
	// ExistingError 返回TableExistsError，不触碰旧表
	ExistingError
)

// InsertOptions 插入配置
type InsertOptions struct {
	// Overwrite 为true时删表重建（按Frame推断列类型）
	Overwrite bool
	// BatchSize 单批最大行数，0或负数取DefaultBatchSize
	BatchSize int
	// OnExisting 表已存在且不覆盖时的策略
	OnExisting ExistingTablePolicy
}

// DefaultInsertOptions 默认插入配置
func DefaultInsertOptions() *InsertOptions {
	return &InsertOptions{
		BatchSize:  DefaultBatchSize,
		OnExisting: ExistingTruncate,
	}
}

// InsertFrame 把Frame写入目标表，必要时自动创建schema和表。
// 数据按批下发：每批一条多行参数化INSERT并独立提交，某批失败只回滚
// 该批并返回带1基批次序号的InsertError，之前已提交的批次保留
// （批内原子、跨批不原子，这是刻意的吞吐/原子性权衡）。
// 空Frame（零行）整体空操作：不建表也不插入。
func (c *Client) InsertFrame(ctx context.Context, frame *Frame, qualifiedName string, opts *InsertOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if frame == nil || frame.NumRows() == 0 {
		return nil
	}
	if opts == nil {
		opts = DefaultInsertOptions()
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	schema, table, err := ParseQualifiedName(qualifiedName)
	if err != nil {
		return err
	}
	if err := c.ensureTable(ctx, frame, schema, table, opts); err != nil {
		return err
	}
	return c.insertBatched(ctx, frame, schema, table, batchSize)
}

// insertBatched 分批执行参数化插入。调用方需持有c.mu。
func (c *Client) insertBatched(ctx context.Context, frame *Frame, schema, table string, batchSize int) error {
	db, err := c.conn(ctx)
	if err != nil {
		return err
	}

	columns := frame.Columns()
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = QuoteIdentifier(col)
	}
	insertPrefix := "INSERT INTO " + c.dialect.QualifyTable(schema, table) +
		" (" + strings.Join(quoted, ", ") + ") VALUES "

	totalRows := frame.NumRows()
	for start, batch := 0, 1; start < totalRows; start, batch = start+batchSize, batch+1 {
		end := start + batchSize
		if end > totalRows {
			end = totalRows
		}
		rowCount := end - start

		stmt := insertPrefix + c.dialect.Placeholders(len(columns), rowCount)
		args := make([]any, 0, rowCount*len(columns))
		for row := start; row < end; row++ {
			args = append(args, frame.Row(row)...)
		}

		startTime := time.Now()
		err := c.execBatch(ctx, db, stmt, args)
		c.reporter.RecordInsertBatch(schema+"."+table, rowCount, time.Since(startTime), err)
		if err != nil {
			return &InsertError{Batch: batch, Err: err}
		}
	}
	return nil
}

// execBatch 执行单批插入。自动提交模式下每批独立事务并立即提交，
// 失败回滚本批；手动模式下进入会话事务，由调用方收尾。
func (c *Client) execBatch(ctx context.Context, db *sql.DB, stmt string, args []any) error {
	if !c.autoCommit {
		tx, err := c.sessionTx(ctx, db)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, stmt, args...)
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
