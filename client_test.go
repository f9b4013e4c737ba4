package sqlframe_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rushairer/sqlframe"
	"github.com/rushairer/sqlframe/cache"
)

// newSQLiteClient 创建连到内存SQLite的客户端，用于端到端路径测试
func newSQLiteClient(t *testing.T) *sqlframe.Client {
	t.Helper()
	client, err := sqlframe.NewClient(&sqlframe.Config{
		Driver: "sqlite3",
		DBName: ":memory:",
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// countRows 统计表行数
func countRows(t *testing.T, client *sqlframe.Client, table string) int64 {
	t.Helper()
	frame, err := client.Query(context.Background(), "SELECT COUNT(*) AS n FROM "+table)
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return frame.Value(0, 0).(int64)
}

// TestQueryNoStatements 空输入不触碰连接，返回无结果
func TestQueryNoStatements(t *testing.T) {
	client := newSQLiteClient(t)
	for _, sql := range []string{"", "   ", "; ; ;"} {
		frame, err := client.Query(context.Background(), sql)
		if err != nil {
			t.Errorf("Query(%q) unexpected error: %v", sql, err)
		}
		if frame != nil {
			t.Errorf("Query(%q) should return no result, got %v", sql, frame)
		}
	}
}

// TestQueryDDLNoResult DDL没有行描述，返回无结果
func TestQueryDDLNoResult(t *testing.T) {
	client := newSQLiteClient(t)
	frame, err := client.Query(context.Background(), "CREATE TABLE plain (id INTEGER)")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if frame != nil {
		t.Errorf("DDL should produce no result, got %v", frame)
	}
}

// TestQueryLastResultWins 多语句只返回最后一条语句的结果
func TestQueryLastResultWins(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	frame, err := client.Query(ctx,
		"CREATE TABLE t (id INTEGER); INSERT INTO t VALUES (1); SELECT * FROM t;")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if frame == nil {
		t.Fatal("expected result from trailing SELECT")
	}
	if frame.NumRows() != 1 || frame.Value(0, 0).(int64) != 1 {
		t.Errorf("unexpected frame content: %v", frame)
	}

	// 最后一条语句无行描述时丢弃中间结果，整体无结果
	frame, err = client.Query(ctx, "SELECT * FROM t; INSERT INTO t VALUES (2)")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if frame != nil {
		t.Errorf("non-final SELECT result should be discarded, got %v", frame)
	}
}

// TestQueryMultiStatementAtomicity 批次中任一语句失败，整体回滚
func TestQueryMultiStatementAtomicity(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	if _, err := client.Query(ctx, "CREATE TABLE acc (id INTEGER); INSERT INTO acc VALUES (1)"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err := client.Query(ctx,
		"INSERT INTO acc VALUES (2); INSERT INTO acc VALUES (3); "+
			"INSERT INTO no_such_table VALUES (1); INSERT INTO acc VALUES (4)")
	if err == nil {
		t.Fatal("expected failure on statement 3")
	}
	var queryErr *sqlframe.QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("error type = %T, want *QueryError", err)
	}
	if queryErr.Statement != 3 {
		t.Errorf("failing statement index = %d, want 3", queryErr.Statement)
	}

	if n := countRows(t, client, "acc"); n != 1 {
		t.Errorf("row count after rollback = %d, want 1 (statements 1-2 must not survive)", n)
	}
}

// TestQuerySingleStatementErrorIndex 单语句失败也带1基序号
func TestQuerySingleStatementErrorIndex(t *testing.T) {
	client := newSQLiteClient(t)
	_, err := client.Query(context.Background(), "SELECT * FROM missing")
	var queryErr *sqlframe.QueryError
	if !errors.As(err, &queryErr) {
		t.Fatalf("error type = %T, want *QueryError", err)
	}
	if queryErr.Statement != 1 {
		t.Errorf("statement index = %d, want 1", queryErr.Statement)
	}
	if queryErr.Unwrap() == nil {
		t.Error("QueryError should wrap the driver error")
	}
}

// TestCloseThenReuse 关闭后再次操作走懒重连，Close可重复调用
func TestCloseThenReuse(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	if _, err := client.Query(ctx, "CREATE TABLE warm (id INTEGER)"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	frame, err := client.Query(ctx, "SELECT 1 AS one")
	if err != nil {
		t.Fatalf("query after close should reconnect transparently: %v", err)
	}
	if frame.Value(0, 0).(int64) != 1 {
		t.Errorf("unexpected value: %v", frame.Value(0, 0))
	}
}

// TestInsertFrameRoundTrip 插入后查回，含null与特殊字符，逐格相等
func TestInsertFrameRoundTrip(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	frame := sqlframe.NewFrame("id", "name", "active")
	rows := [][]any{
		{int64(1), "alice", true},
		{int64(2), `quote " and 'single'`, false},
		{int64(3), "line1\nline2", true},
		{int64(4), nil, false},
	}
	for _, row := range rows {
		if err := frame.AppendRow(row...); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}

	if err := client.InsertFrame(ctx, frame, "people", nil); err != nil {
		t.Fatalf("InsertFrame failed: %v", err)
	}

	result, err := client.Query(ctx, "SELECT id, name, active FROM people ORDER BY id")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if result.NumRows() != len(rows) {
		t.Fatalf("row count = %d, want %d", result.NumRows(), len(rows))
	}
	for i, want := range rows {
		got := result.Row(i)
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("row %d col %d = %#v, want %#v", i, j, got[j], want[j])
			}
		}
	}
}

// TestInsertOverwrite 覆盖插入后只剩新数据
func TestInsertOverwrite(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	first := sqlframe.NewFrame("id")
	for i := 1; i <= 3; i++ {
		_ = first.AppendRow(int64(i))
	}
	if err := client.InsertFrame(ctx, first, "ow", nil); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	second := sqlframe.NewFrame("id")
	_ = second.AppendRow(int64(10))
	_ = second.AppendRow(int64(11))
	if err := client.InsertFrame(ctx, second, "ow", &sqlframe.InsertOptions{Overwrite: true}); err != nil {
		t.Fatalf("overwrite insert failed: %v", err)
	}

	result, err := client.Query(ctx, "SELECT id FROM ow ORDER BY id")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if result.NumRows() != 2 {
		t.Fatalf("row count = %d, want 2", result.NumRows())
	}
	if result.Value(0, 0).(int64) != 10 || result.Value(1, 0).(int64) != 11 {
		t.Errorf("old rows survived overwrite: %v", result)
	}
}

// TestInsertTruncatePolicy 表已存在且不覆盖时默认清空旧数据
func TestInsertTruncatePolicy(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	frame := sqlframe.NewFrame("id")
	_ = frame.AppendRow(int64(1))
	_ = frame.AppendRow(int64(2))
	if err := client.InsertFrame(ctx, frame, "tr", nil); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	replacement := sqlframe.NewFrame("id")
	_ = replacement.AppendRow(int64(9))
	if err := client.InsertFrame(ctx, replacement, "tr", nil); err != nil {
		t.Fatalf("second insert failed: %v", err)
	}

	if n := countRows(t, client, "tr"); n != 1 {
		t.Errorf("row count = %d, want 1 (table should have been truncated)", n)
	}
}

// TestInsertExistingErrorPolicy ExistingError策略下不触碰旧表
func TestInsertExistingErrorPolicy(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	frame := sqlframe.NewFrame("id")
	_ = frame.AppendRow(int64(1))
	if err := client.InsertFrame(ctx, frame, "guarded", nil); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := client.InsertFrame(ctx, frame, "guarded", &sqlframe.InsertOptions{
		OnExisting: sqlframe.ExistingError,
	})
	var existsErr *sqlframe.TableExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("error type = %T, want *TableExistsError", err)
	}
	if n := countRows(t, client, "guarded"); n != 1 {
		t.Errorf("row count = %d, want 1 (existing data must be untouched)", n)
	}
}

// TestInsertBatchBoundary 2500行按1000分批，全部落库
func TestInsertBatchBoundary(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	frame := sqlframe.NewFrame("id")
	for i := 0; i < 2500; i++ {
		_ = frame.AppendRow(int64(i))
	}
	if err := client.InsertFrame(ctx, frame, "big", &sqlframe.InsertOptions{BatchSize: 1000}); err != nil {
		t.Fatalf("InsertFrame failed: %v", err)
	}

	if n := countRows(t, client, "big"); n != 2500 {
		t.Fatalf("row count = %d, want 2500", n)
	}

	// 抽查批次边界附近的行
	result, err := client.Query(ctx, "SELECT id FROM big WHERE id IN (0, 999, 1999, 2499) ORDER BY id")
	if err != nil {
		t.Fatalf("sample query failed: %v", err)
	}
	want := []int64{0, 999, 1999, 2499}
	if result.NumRows() != len(want) {
		t.Fatalf("sample rows = %d, want %d", result.NumRows(), len(want))
	}
	for i, id := range want {
		if result.Value(i, 0).(int64) != id {
			t.Errorf("sample row %d = %v, want %d", i, result.Value(i, 0), id)
		}
	}
}

// TestInsertBatchErrorIndex 某批失败只回滚该批，报告1基批次序号
func TestInsertBatchErrorIndex(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	if _, err := client.Query(ctx, "CREATE TABLE uq (id INTEGER UNIQUE)"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	// 第二批（3,3）触发唯一约束冲突
	frame := sqlframe.NewFrame("id")
	for _, id := range []int64{1, 2, 3, 3} {
		_ = frame.AppendRow(id)
	}
	err := client.InsertFrame(ctx, frame, "uq", &sqlframe.InsertOptions{BatchSize: 2})
	var insertErr *sqlframe.InsertError
	if !errors.As(err, &insertErr) {
		t.Fatalf("error type = %T, want *InsertError", err)
	}
	if insertErr.Batch != 2 {
		t.Errorf("failing batch index = %d, want 2", insertErr.Batch)
	}

	// 第一批已提交并保留（批内原子、跨批不原子）
	if n := countRows(t, client, "uq"); n != 2 {
		t.Errorf("row count = %d, want 2 (first batch must survive)", n)
	}
}

// TestInsertEmptyFrameNoop 零行Frame整体空操作，不建表
func TestInsertEmptyFrameNoop(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	empty := sqlframe.NewFrame("id", "name")
	if err := client.InsertFrame(ctx, empty, "ghost", nil); err != nil {
		t.Fatalf("empty insert should be a no-op, got %v", err)
	}
	exists, err := client.TableExists(ctx, "ghost")
	if err != nil {
		t.Fatalf("TableExists failed: %v", err)
	}
	if exists {
		t.Error("empty frame must not create the table")
	}
}

// TestInsertInvalidName 非法限定名在发SQL前就被拒绝
func TestInsertInvalidName(t *testing.T) {
	client := newSQLiteClient(t)
	frame := sqlframe.NewFrame("id")
	_ = frame.AppendRow(int64(1))

	err := client.InsertFrame(context.Background(), frame, "a.b.c", nil)
	var invalidErr *sqlframe.InvalidIdentifierError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error type = %T, want *InvalidIdentifierError", err)
	}
}

// TestInsertSpecialColumnNames 特殊字符列名靠转义落地
func TestInsertSpecialColumnNames(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	frame := sqlframe.NewFrame("normal_col", "with space", "select")
	_ = frame.AppendRow(int64(1), "a", "x")
	_ = frame.AppendRow(int64(2), "b", "y")

	if err := client.InsertFrame(ctx, frame, "special", nil); err != nil {
		t.Fatalf("InsertFrame failed: %v", err)
	}

	result, err := client.Query(ctx, `SELECT normal_col, "with space", "select" FROM special ORDER BY normal_col`)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if result.NumRows() != 2 || result.Value(0, 1) != "a" || result.Value(1, 2) != "y" {
		t.Errorf("unexpected content: %v", result)
	}
}

// TestCatalogOperations 表/列/schema目录操作
func TestCatalogOperations(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	frame := sqlframe.NewFrame("id", "name")
	_ = frame.AppendRow(int64(1), "alice")
	if err := client.InsertFrame(ctx, frame, "emp", nil); err != nil {
		t.Fatalf("InsertFrame failed: %v", err)
	}

	exists, err := client.TableExists(ctx, "emp")
	if err != nil || !exists {
		t.Errorf("TableExists(emp) = %v, %v; want true", exists, err)
	}
	exists, err = client.TableExists(ctx, "nothing")
	if err != nil || exists {
		t.Errorf("TableExists(nothing) = %v, %v; want false", exists, err)
	}

	tables, err := client.ListTables(ctx, "")
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	found := false
	if col, ok := tables.Column("table_name"); ok {
		for _, v := range col {
			if v == "emp" {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("ListTables should include emp: %v", tables)
	}

	desc, err := client.DescribeTable(ctx, "emp")
	if err != nil {
		t.Fatalf("DescribeTable failed: %v", err)
	}
	if desc.NumRows() != 2 {
		t.Errorf("DescribeTable rows = %d, want 2", desc.NumRows())
	}
	names, _ := desc.Column("column_name")
	if len(names) != 2 || names[0] != "id" || names[1] != "name" {
		t.Errorf("column names = %v", names)
	}

	ok, err := client.SchemaExists(ctx, "public")
	if err != nil || !ok {
		t.Errorf("SchemaExists(public) = %v, %v; want true", ok, err)
	}

	schemas, err := client.ListSchemas(ctx)
	if err != nil || schemas == nil || schemas.NumRows() == 0 {
		t.Errorf("ListSchemas = %v, %v", schemas, err)
	}
}

// TestManualCommitSession AutoCommit关闭时由Commit/Rollback收尾
func TestManualCommitSession(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	client.WithAutoCommit(false)
	if _, err := client.Query(ctx, "CREATE TABLE pending (id INTEGER)"); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if _, err := client.Query(ctx, "INSERT INTO pending VALUES (1)"); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if err := client.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}
	client.WithAutoCommit(true)

	exists, err := client.TableExists(ctx, "pending")
	if err != nil {
		t.Fatalf("TableExists failed: %v", err)
	}
	if exists {
		t.Error("rolled back DDL should not survive")
	}

	client.WithAutoCommit(false)
	if _, err := client.Query(ctx, "CREATE TABLE durable (id INTEGER)"); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if err := client.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	client.WithAutoCommit(true)

	exists, err = client.TableExists(ctx, "durable")
	if err != nil || !exists {
		t.Errorf("committed DDL should survive: %v, %v", exists, err)
	}
}

// TestManualSessionConsecutiveOperations 手动提交会话内的后续操作
// 必须复用事务连接，不得在容量为1的连接池上阻塞
func TestManualSessionConsecutiveOperations(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		client.WithAutoCommit(false)
		if _, err := client.Query(ctx, "CREATE TABLE sess (id INTEGER)"); err != nil {
			done <- err
			return
		}
		if _, err := client.Query(ctx, "INSERT INTO sess VALUES (1)"); err != nil {
			done <- err
			return
		}
		extra := sqlframe.NewFrame("id")
		_ = extra.AppendRow(int64(2))
		if err := client.InsertFrame(ctx, extra, "sess_extra", nil); err != nil {
			done <- err
			return
		}
		exists, err := client.TableExists(ctx, "sess")
		if err != nil {
			done <- err
			return
		}
		if !exists {
			done <- errors.New("session table not visible inside the transaction")
			return
		}
		done <- client.Commit()
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("manual session failed: %v", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("manual session blocked on a follow-up operation")
	}

	client.WithAutoCommit(true)
	if n := countRows(t, client, "sess"); n != 1 {
		t.Errorf("sess row count = %d, want 1", n)
	}
	if n := countRows(t, client, "sess_extra"); n != 1 {
		t.Errorf("sess_extra row count = %d, want 1", n)
	}
}

// TestQueryCacheScopedPerDatabase 共享同一缓存的客户端指向不同数据库时
// 结果互不串用
func TestQueryCacheScopedPerDatabase(t *testing.T) {
	dir := t.TempDir()
	shared := cache.NewMemoryCache()
	ctx := context.Background()

	openClient := func(name string) *sqlframe.Client {
		client, err := sqlframe.NewClient(&sqlframe.Config{
			Driver: "sqlite3",
			DBName: filepath.Join(dir, name),
		})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		t.Cleanup(func() { _ = client.Close() })
		client.WithQueryCache(shared, time.Minute)
		return client
	}

	first := openClient("a.db")
	second := openClient("b.db")

	frame := sqlframe.NewFrame("id")
	_ = frame.AppendRow(int64(1))
	if err := first.InsertFrame(ctx, frame, "t", nil); err != nil {
		t.Fatalf("insert into first failed: %v", err)
	}
	_ = frame.AppendRow(int64(2))
	if err := second.InsertFrame(ctx, frame, "t", nil); err != nil {
		t.Fatalf("insert into second failed: %v", err)
	}

	const sel = "SELECT id FROM t ORDER BY id"
	a, err := first.Query(ctx, sel)
	if err != nil {
		t.Fatalf("query first failed: %v", err)
	}
	if a.NumRows() != 1 {
		t.Fatalf("first database rows = %d, want 1", a.NumRows())
	}
	b, err := second.Query(ctx, sel)
	if err != nil {
		t.Fatalf("query second failed: %v", err)
	}
	if b.NumRows() != 2 {
		t.Errorf("second database rows = %d, want 2 (must not serve the other database's cache entry)", b.NumRows())
	}
}

// TestQueryCacheServesRepeatedSelect 单SELECT命中缓存后不再访问数据库
func TestQueryCacheServesRepeatedSelect(t *testing.T) {
	client := newSQLiteClient(t)
	client.WithQueryCache(cache.NewMemoryCache(), time.Minute)
	ctx := context.Background()

	frame := sqlframe.NewFrame("id")
	_ = frame.AppendRow(int64(1))
	if err := client.InsertFrame(ctx, frame, "cached", nil); err != nil {
		t.Fatalf("InsertFrame failed: %v", err)
	}

	const sel = "SELECT id FROM cached ORDER BY id"
	first, err := client.Query(ctx, sel)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if first.NumRows() != 1 {
		t.Fatalf("first query rows = %d, want 1", first.NumRows())
	}

	// 绕过缓存写入新行；相同SELECT应命中缓存返回旧结果
	if _, err := client.Query(ctx, "INSERT INTO cached VALUES (2)"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	second, err := client.Query(ctx, sel)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if second.NumRows() != 1 {
		t.Errorf("cached query rows = %d, want 1 (stale cache expected)", second.NumRows())
	}
}

// mockReporter 测试用监控报告器
type mockReporter struct {
	queries int
	batches int
	rows    int
	errs    int
}

func (m *mockReporter) RecordQuery(statements int, duration time.Duration, err error) {
	m.queries++
	if err != nil {
		m.errs++
	}
}

func (m *mockReporter) RecordInsertBatch(table string, batchSize int, duration time.Duration, err error) {
	m.batches++
	m.rows += batchSize
	if err != nil {
		m.errs++
	}
}

// TestMetricsReporting 每次查询与每个插入批次都应上报
func TestMetricsReporting(t *testing.T) {
	client := newSQLiteClient(t)
	reporter := &mockReporter{}
	client.WithMetricsReporter(reporter)
	ctx := context.Background()

	frame := sqlframe.NewFrame("id")
	for i := 0; i < 2500; i++ {
		_ = frame.AppendRow(int64(i))
	}
	if err := client.InsertFrame(ctx, frame, "metered", &sqlframe.InsertOptions{BatchSize: 1000}); err != nil {
		t.Fatalf("InsertFrame failed: %v", err)
	}
	if reporter.batches != 3 {
		t.Errorf("insert batches reported = %d, want 3", reporter.batches)
	}
	if reporter.rows != 2500 {
		t.Errorf("rows reported = %d, want 2500", reporter.rows)
	}

	if _, err := client.Query(ctx, "SELECT COUNT(*) AS n FROM metered"); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if reporter.queries != 1 {
		t.Errorf("queries reported = %d, want 1", reporter.queries)
	}
	if reporter.errs != 0 {
		t.Errorf("errors reported = %d, want 0", reporter.errs)
	}
}

// TestConnectionErrorSurfaced 建连失败应返回ConnectionError
func TestConnectionErrorSurfaced(t *testing.T) {
	client, err := sqlframe.NewClient(&sqlframe.Config{
		Driver: "sqlite3",
		DBName: "/nonexistent-dir-xyz/db.sqlite",
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	_, err = client.Query(context.Background(), "SELECT 1")
	var connErr *sqlframe.ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("error type = %T (%v), want *ConnectionError", err, err)
	}
}

// TestUnsupportedDriver 未知驱动在构造时报错
func TestUnsupportedDriver(t *testing.T) {
	_, err := sqlframe.NewClient(&sqlframe.Config{Driver: "oracle"})
	if err == nil {
		t.Fatal("NewClient with unsupported driver should fail")
	}
	if fmt.Sprint(err) == "" {
		t.Error("error should carry a message")
	}
}
