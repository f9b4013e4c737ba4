// sqlframe-server 把sqlframe客户端包装成一个小型HTTP服务：
// POST /query 执行SQL并返回JSON行集，GET /metrics 暴露Prometheus指标。
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushairer/sqlframe"
	"github.com/rushairer/sqlframe/monitoring"
)

type queryRequest struct {
	SQL string `json:"sql" binding:"required"`
}

type queryResponse struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func main() {
	var (
		listenAddr = flag.String("listen", ":8080", "HTTP listen address")
		driver     = flag.String("driver", "postgres", "database driver: postgres, mysql, sqlite3")
		host       = flag.String("host", "localhost", "database host")
		port       = flag.Int("port", 5432, "database port")
		dbname     = flag.String("dbname", "", "database name")
		user       = flag.String("user", "", "database user")
		password   = flag.String("password", "", "database password")
		sslmode    = flag.String("sslmode", "disable", "postgres sslmode")
	)
	flag.Parse()

	metrics := monitoring.NewPrometheusMetrics()

	client, err := sqlframe.NewClient(&sqlframe.Config{
		Driver:   *driver,
		Host:     *host,
		Port:     *port,
		DBName:   *dbname,
		User:     *user,
		Password: *password,
		SSLMode:  *sslmode,
	})
	if err != nil {
		log.Fatalf("create client: %v", err)
	}
	client.WithMetricsReporter(metrics)
	defer client.Close()

	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.POST("/query", func(c *gin.Context) {
		var req queryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		frame, err := client.Query(c.Request.Context(), req.SQL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if frame == nil {
			c.JSON(http.StatusOK, gin.H{"result": nil})
			return
		}

		resp := queryResponse{Columns: frame.Columns()}
		for i := 0; i < frame.NumRows(); i++ {
			resp.Rows = append(resp.Rows, frame.Row(i))
		}
		c.JSON(http.StatusOK, resp)
	})

	log.Printf("sqlframe-server listening on %s (driver=%s)", *listenAddr, *driver)
	if err := router.Run(*listenAddr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
