package sqlframe

import (
	"context"
	"time"
)

// QueryCache 查询结果缓存接口。只有自动提交模式下的单条SELECT走缓存，
// 值为gob编码的Frame。实现方自行处理过期与淘汰；Get未命中返回false。
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
