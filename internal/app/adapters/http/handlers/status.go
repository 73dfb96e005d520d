package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) StatusHandler(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.JSON(http.StatusOK, gin.H{
		"uptime":     time.Since(h.startedAt).Truncate(time.Second).String(),
		"chats":      h.manager.Len(),
		"data_file":  h.manager.Path(),
		"log_level":  h.env.LogLevel,
		"mem_sys_mb": m.Sys / 1024 / 1024,
		"goroutines": runtime.NumGoroutine(),
	})
}
