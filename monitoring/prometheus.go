// Package monitoring 提供MetricsReporter的Prometheus实现
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics Prometheus指标收集器，实现sqlframe.MetricsReporter接口
type PrometheusMetrics struct {
	// 查询指标
	queryDuration *prometheus.HistogramVec
	queryTotal    *prometheus.CounterVec

	// 插入指标
	insertBatchDuration *prometheus.HistogramVec
	insertBatchSize     *prometheus.HistogramVec
	rowsInserted        *prometheus.CounterVec

	// 错误指标
	errorTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewPrometheusMetrics 创建Prometheus指标收集器
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()

	pm := &PrometheusMetrics{
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sqlframe_query_duration_seconds",
				Help:    "Duration of query calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~32s
			},
			[]string{"statements", "status"},
		),

		queryTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sqlframe_query_total",
				Help: "Total number of query calls",
			},
			[]string{"statements", "status"},
		),

		insertBatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sqlframe_insert_batch_duration_seconds",
				Help:    "Duration of insert batches in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
			},
			[]string{"table", "status"},
		),

		insertBatchSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sqlframe_insert_batch_size",
				Help:    "Row count of insert batches",
				Buckets: prometheus.ExponentialBuckets(1, 2, 15), // 1 to ~16k
			},
			[]string{"table"},
		),

		rowsInserted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sqlframe_rows_inserted_total",
				Help: "Total number of rows inserted",
			},
			[]string{"table"},
		),

		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sqlframe_errors_total",
				Help: "Total number of failed operations",
			},
			[]string{"operation"},
		),

		registry: registry,
	}

	registry.MustRegister(
		pm.queryDuration,
		pm.queryTotal,
		pm.insertBatchDuration,
		pm.insertBatchSize,
		pm.rowsInserted,
		pm.errorTotal,
	)

	return pm
}

// RecordQuery 上报一次查询调用
func (pm *PrometheusMetrics) RecordQuery(statements int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "fail"
		pm.errorTotal.WithLabelValues("query").Inc()
	}
	pm.queryDuration.WithLabelValues(strconv.Itoa(statements), status).Observe(duration.Seconds())
	pm.queryTotal.WithLabelValues(strconv.Itoa(statements), status).Inc()
}

// RecordInsertBatch 上报一个插入批次
func (pm *PrometheusMetrics) RecordInsertBatch(table string, batchSize int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "fail"
		pm.errorTotal.WithLabelValues("insert").Inc()
	}
	pm.insertBatchDuration.WithLabelValues(table, status).Observe(duration.Seconds())
	pm.insertBatchSize.WithLabelValues(table).Observe(float64(batchSize))
	if err == nil {
		pm.rowsInserted.WithLabelValues(table).Add(float64(batchSize))
	}
}

// Registry 暴露底层registry，便于外部追加自定义指标
func (pm *PrometheusMetrics) Registry() *prometheus.Registry {
	return pm.registry
}

// Handler 返回/metrics端点的HTTP处理器
func (pm *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(pm.registry, promhttp.HandlerOpts{})
}
