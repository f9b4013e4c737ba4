// Package sqlframe 提供面向SQL数据库的客户端数据访问层：
// 任意SQL（单条或多条语句）的事务化执行，以及内存表数据与数据库表之间的
// 双向搬运（按需建库建表、分批参数化插入）。
package sqlframe

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"
)

func init() {
	// 单元格值经interface槽走gob编码，time.Time需要显式注册
	gob.Register(time.Time{})
}

// Frame 内存表：有序命名列，列内值类型一致（允许null），各列行数相同。
// 既表示查询结果，也表示待插入的数据。一旦由查询产生即不再修改。
type Frame struct {
	columns []string
	data    [][]any // 列优先存储，data[i]对应columns[i]
}

// NewFrame 创建空Frame
func NewFrame(columns ...string) *Frame {
	data := make([][]any, len(columns))
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Frame{
		columns: cols,
		data:    data,
	}
}

// AppendRow 追加一行，值顺序与列顺序一致；nil表示SQL NULL
func (f *Frame) AppendRow(values ...any) error {
	if len(values) != len(f.columns) {
		return fmt.Errorf("row has %d values, frame has %d columns", len(values), len(f.columns))
	}
	for i, v := range values {
		f.data[i] = append(f.data[i], v)
	}
	return nil
}

// Columns 获取列名（拷贝）
func (f *Frame) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

// NumColumns 列数
func (f *Frame) NumColumns() int {
	return len(f.columns)
}

// NumRows 行数
func (f *Frame) NumRows() int {
	if len(f.data) == 0 {
		return 0
	}
	return len(f.data[0])
}

// ColumnIndex 获取列的索引，不存在返回-1
func (f *Frame) ColumnIndex(column string) int {
	for i, col := range f.columns {
		if col == column {
			return i
		}
	}
	return -1
}

// HasColumn 检查是否包含指定列
func (f *Frame) HasColumn(column string) bool {
	return f.ColumnIndex(column) >= 0
}

// Column 按列名获取整列值
func (f *Frame) Column(column string) ([]any, bool) {
	i := f.ColumnIndex(column)
	if i < 0 {
		return nil, false
	}
	return f.data[i], true
}

// Value 获取指定行列的单元格值
func (f *Frame) Value(row, col int) any {
	return f.data[col][row]
}

// Row 按行号取一行（值顺序与列顺序一致）
func (f *Frame) Row(row int) []any {
	out := make([]any, len(f.columns))
	for i := range f.columns {
		out[i] = f.data[i][row]
	}
	return out
}

// String 字符串表示
func (f *Frame) String() string {
	return fmt.Sprintf("Frame{columns=%v, rows=%d}", f.columns, f.NumRows())
}

// frameWire gob编解码用的导出结构
type frameWire struct {
	Columns []string
	Data    [][]any
}

// GobEncode 实现gob.GobEncoder，供结果缓存序列化
func (f *Frame) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(frameWire{Columns: f.columns, Data: f.data})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode 实现gob.GobDecoder
func (f *Frame) GobDecode(b []byte) error {
	var w frameWire
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&w); err != nil {
		return err
	}
	f.columns = w.Columns
	f.data = w.Data
	return nil
}
