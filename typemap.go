package sqlframe

import (
	"math"
	"time"
	"unicode/utf8"
)

// 推断得到的目标列类型关键字
const (
	TypeInteger     = "INTEGER"
	TypeBigint      = "BIGINT"
	TypeDouble      = "DOUBLE PRECISION"
	TypeBoolean     = "BOOLEAN"
	TypeTimestamp   = "TIMESTAMP"
	TypeTimestampTZ = "TIMESTAMP WITH TIME ZONE"
	TypeText        = "TEXT"
	TypeVarchar     = "VARCHAR(255)"
)

// maxVarcharLength 超过该长度的文本列退化为TEXT
const maxVarcharLength = 255

// InferColumnTypes 根据Frame各列的运行时值类型推断目标列类型声明。
// 每次建表操作重新计算，不做持久化。
// 优先级：整数（32位放得下取INTEGER，否则BIGINT）> 浮点 > 布尔 >
// 时间戳（UTC取TIMESTAMP，带时区取TIMESTAMP WITH TIME ZONE）> 文本
// （最大长度不超过255取VARCHAR(255)，否则TEXT）。全null列落到VARCHAR(255)。
func InferColumnTypes(f *Frame) map[string]string {
	types := make(map[string]string, f.NumColumns())
	for _, col := range f.Columns() {
		values, _ := f.Column(col)
		types[col] = inferColumnType(values)
	}
	return types
}

// columnKind 扫描期间的列类别
type columnKind int

const (
	kindNull columnKind = iota
	kindInt
	kindFloat
	kindBool
	kindTime
	kindString
	kindOther
)

// inferColumnType 推断单列类型
func inferColumnType(values []any) string {
	kind := kindNull
	fitsInt32 := true
	hasZone := false
	maxLength := 0

	for _, v := range values {
		if v == nil {
			continue
		}
		var k columnKind
		switch val := v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			k = kindInt
			if !fitsSigned32(val) {
				fitsInt32 = false
			}
		case float32, float64:
			k = kindFloat
		case bool:
			k = kindBool
		case time.Time:
			k = kindTime
			if _, offset := val.Zone(); offset != 0 {
				hasZone = true
			}
		case string:
			k = kindString
			if n := utf8.RuneCountInString(val); n > maxLength {
				maxLength = n
			}
		case []byte:
			k = kindString
			if n := utf8.RuneCount(val); n > maxLength {
				maxLength = n
			}
		default:
			k = kindOther
		}
		kind = mergeKind(kind, k)
	}

	switch kind {
	case kindInt:
		if fitsInt32 {
			return TypeInteger
		}
		return TypeBigint
	case kindFloat:
		return TypeDouble
	case kindBool:
		return TypeBoolean
	case kindTime:
		if hasZone {
			return TypeTimestampTZ
		}
		return TypeTimestamp
	case kindString:
		if maxLength <= maxVarcharLength {
			return TypeVarchar
		}
		return TypeText
	case kindNull:
		// 全null列落到文本默认
		return TypeVarchar
	default:
		return TypeText
	}
}

// mergeKind 合并两次观察到的列类别；整数与浮点混合视为浮点，
// 其余异类混合退化为other（最终映射为TEXT）。
func mergeKind(a, b columnKind) columnKind {
	if a == kindNull {
		return b
	}
	if a == b {
		return a
	}
	if (a == kindInt && b == kindFloat) || (a == kindFloat && b == kindInt) {
		return kindFloat
	}
	return kindOther
}

// fitsSigned32 判断整数值是否落在有符号32位范围内
func fitsSigned32(v any) bool {
	switch n := v.(type) {
	case int:
		return n >= math.MinInt32 && n <= math.MaxInt32
	case int8, int16, int32, uint8, uint16:
		return true
	case int64:
		return n >= math.MinInt32 && n <= math.MaxInt32
	case uint:
		return n <= math.MaxInt32
	case uint32:
		return n <= math.MaxInt32
	case uint64:
		return n <= math.MaxInt32
	default:
		return false
	}
}
