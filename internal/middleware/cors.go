package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS opens the agent endpoints to browser-based A2A clients. The A2A
// surface carries no credentials, so any origin is accepted.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", HeaderRequestID, HeaderTraceID},
		ExposeHeaders:   []string{HeaderRequestID, HeaderTraceID},
	})
}
