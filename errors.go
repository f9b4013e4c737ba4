package sqlframe

import "fmt"

// ConnectionError 连接建立失败。核心不做重试，直接上抛给调用方。
type ConnectionError struct {
	Err error
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("sqlframe: connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// InvalidIdentifierError 限定名无法解析（点号多于一个或部件为空）
type InvalidIdentifierError struct {
	Name string
}

// Error implements the error interface
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("sqlframe: invalid identifier %q", e.Name)
}

// QueryError 查询执行失败。Statement为失败语句的1基序号；
// 多语句批次在抛出前已整体回滚。
type QueryError struct {
	Statement int
	Err       error
}

// Error implements the error interface
func (e *QueryError) Error() string {
	return fmt.Sprintf("sqlframe: statement %d failed: %v", e.Statement, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// InsertError 批量插入失败。Batch为失败批次的1基序号；
// 仅该批次回滚，之前已提交的批次保留。
type InsertError struct {
	Batch int
	Err   error
}

// Error implements the error interface
func (e *InsertError) Error() string {
	return fmt.Sprintf("sqlframe: insert batch %d failed: %v", e.Batch, e.Err)
}

func (e *InsertError) Unwrap() error { return e.Err }

// TableExistsError 目标表已存在（仅在ExistingError策略下抛出）
type TableExistsError struct {
	Schema string
	Table  string
}

// Error implements the error interface
func (e *TableExistsError) Error() string {
	return fmt.Sprintf("sqlframe: table %s.%s already exists", e.Schema, e.Table)
}
