package handler

import (
	"context"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthCheckHandler reports process uptime, CPU load and dependency
// reachability. Redis is optional, so a missing cache reports as
// "disabled" rather than unhealthy.
func HealthCheckHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	health := gin.H{
		"status":    "healthy",
		"uptime":    time.Since(startTime).String(),
		"cpu_usage": utils.GetCPUUsage(),
	}

	mongoStatus := "connected"
	if err := utils.PingMongo(ctx); err != nil {
		mongoStatus = "unreachable"
		health["status"] = "degraded"
	}
	health["mongo"] = mongoStatus

	redisStatus := "disabled"
	if services.TokenBlacklist != nil {
		redisStatus = "connected"
		if err := services.TokenBlacklist.Client.Ping(ctx).Err(); err != nil {
			redisStatus = "unreachable"
			health["status"] = "degraded"
		}
	}
	health["redis"] = redisStatus

	utils.Success(c, health)
}
