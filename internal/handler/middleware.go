package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"giraffe-store/internal/metric"
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()
		// после хендлера фиксируем время и статус
		metric.ObserveRequest(time.Since(start), c.Writer.Status())
	}
}
