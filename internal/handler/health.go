package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const healthTimeout = 3 * time.Second

// Health pings the database and, when configured, Redis. It answers 503 if
// either fails and reports only a status word per component.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		dbStatus := probe("db", func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		})
		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = probe("redis", func() error { return rdb.Ping(ctx).Err() })
		}

		ok := dbStatus == "connected" && redisStatus != "error"
		code := http.StatusOK
		if !ok {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"ok": ok, "db": dbStatus, "redis": redisStatus})
	}
}

func probe(component string, ping func() error) string {
	if err := ping(); err != nil {
		log.Warn().Err(err).Str("component", component).Msg("health check failed")
		return "error"
	}
	return "connected"
}
