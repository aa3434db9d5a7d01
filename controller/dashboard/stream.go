package dashboard

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/middleware"
	"taskflow/subscription"
)

// StreamController serves the live dashboard as server-sent events. Each
// connection gets its own subscription manager for the authenticated
// identity; closing the connection tears all of its live queries down.
func StreamController(router *gin.Engine, watcher subscription.Watcher, log *zap.Logger) {
	router.GET("/dashboard/stream", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Stream(c, watcher, log)
	})
}

func Stream(c *gin.Context, watcher subscription.Watcher, log *zap.Logger) {
	userID := c.MustGet("userId").(string)
	ctx := c.Request.Context()

	manager := subscription.NewManager(watcher, log)
	snapshots := manager.Start(ctx, userID)
	defer manager.Stop()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case aggregate, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent("aggregate", aggregate)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
