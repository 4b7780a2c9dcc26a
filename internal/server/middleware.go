package server

import (
	"strings"
	"time"

	"tender-board/internal/biddingerrors"
	"tender-board/services/tender/helpers"
	"tender-board/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// BidderIdentityMiddleware requires the caller's company name on every bidder route
func BidderIdentityMiddleware(c *gin.Context) {
	bidder := strings.TrimSpace(c.GetHeader(helpers.BidderHeader))
	if bidder == "" {
		helpers.RespondError(c, "BidderIdentityMiddleware", biddingerrors.ErrMissingBidder, map[string]any{
			"path": c.Request.URL.Path,
		})
		c.Abort()
		return
	}

	c.Set(helpers.BidderContextKey, bidder)
	c.Next()
}
