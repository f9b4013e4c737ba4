package sqlframe

import "strings"

// SplitStatements 把原始SQL按分号切分为有序的非空语句序列。
// 纯词法切分：不识别字符串字面量或注释中的分号。多语句模式下，
// 单条逻辑语句内不要嵌入字面分号。
func SplitStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		stmt := strings.TrimSpace(part)
		if stmt == "" {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}
