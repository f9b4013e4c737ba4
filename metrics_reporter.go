package sqlframe

import "time"

// MetricsReporter 性能监控报告器接口
type MetricsReporter interface {
	// RecordQuery 上报一次查询调用（statements为本次切分出的语句数）
	RecordQuery(statements int, duration time.Duration, err error)

	// RecordInsertBatch 上报一个插入批次
	RecordInsertBatch(table string, batchSize int, duration time.Duration, err error)
}

// NoopMetricsReporter 空实现，未配置监控时的占位
type NoopMetricsReporter struct{}

func (NoopMetricsReporter) RecordQuery(statements int, duration time.Duration, err error) {}

func (NoopMetricsReporter) RecordInsertBatch(table string, batchSize int, duration time.Duration, err error) {
}
