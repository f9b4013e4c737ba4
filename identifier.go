package sqlframe

import (
	"regexp"
	"strings"
)

// plainIdentifierPattern 无需引号包裹的标识符形式
var plainIdentifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reservedKeywords 保留字denylist：命中则必须加引号
var reservedKeywords = map[string]struct{}{
	"select": {},
	"from":   {},
	"where":  {},
	"insert": {},
	"update": {},
	"delete": {},
	"create": {},
	"drop":   {},
	"alter":  {},
	"table":  {},
	"group":  {},
	"order":  {},
	"by":     {},
}

// DefaultSchema 未指定schema时的默认值
const DefaultSchema = "public"

// ParseQualifiedName 把 "schema.table" 或 "table" 解析为 (schema, table)。
// 无点号时schema取public；每部分去掉包裹的双引号；多于一个点号返回
// InvalidIdentifierError。
func ParseQualifiedName(raw string) (schema string, table string, err error) {
	parts := strings.Split(strings.TrimSpace(raw), ".")
	switch len(parts) {
	case 1:
		schema, table = DefaultSchema, stripQuotes(parts[0])
	case 2:
		schema, table = stripQuotes(parts[0]), stripQuotes(parts[1])
	default:
		return "", "", &InvalidIdentifierError{Name: raw}
	}
	if schema == "" || table == "" {
		return "", "", &InvalidIdentifierError{Name: raw}
	}
	return schema, table, nil
}

// stripQuotes 去掉包裹的双引号
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// QuoteIdentifier 标识符防注入：形如普通标识符且非保留字的原样返回，
// 否则用双引号包裹并把内部双引号翻倍。所有拼入生成SQL的schema、表名、
// 列名都必须经过这里；单元格值一律走绑定参数，不在此列。
func QuoteIdentifier(name string) string {
	if plainIdentifierPattern.MatchString(name) {
		if _, reserved := reservedKeywords[strings.ToLower(name)]; !reserved {
			return name
		}
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteQualified 生成带schema前缀的完整引用名
func quoteQualified(schema, table string) string {
	return QuoteIdentifier(schema) + "." + QuoteIdentifier(table)
}
