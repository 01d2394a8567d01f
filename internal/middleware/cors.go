package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns a configured CORS middleware. A single "*" origin enables
// the allow-all policy.
func CORS(origins, methods, headers []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: methods,
		AllowHeaders: headers,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
