package sqlframe

import (
	"errors"
	"testing"
	"time"
)

// TestDefaultReporterIsNoop 未显式配置监控时默认挂空报告器，
// 传nil也退回空实现，上报路径无需判空
func TestDefaultReporterIsNoop(t *testing.T) {
	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, ok := client.reporter.(NoopMetricsReporter); !ok {
		t.Errorf("default reporter = %T, want NoopMetricsReporter", client.reporter)
	}

	client.WithMetricsReporter(nil)
	if _, ok := client.reporter.(NoopMetricsReporter); !ok {
		t.Errorf("nil reporter should fall back to NoopMetricsReporter, got %T", client.reporter)
	}
}

// TestNoopReporterAllMethods 空报告器所有方法可安全调用
func TestNoopReporterAllMethods(t *testing.T) {
	var reporter MetricsReporter = NoopMetricsReporter{}
	reporter.RecordQuery(1, time.Millisecond, nil)
	reporter.RecordQuery(3, time.Millisecond, errors.New("boom"))
	reporter.RecordInsertBatch("public.t", 1000, time.Millisecond, nil)
	reporter.RecordInsertBatch("public.t", 0, 0, errors.New("boom"))
}
