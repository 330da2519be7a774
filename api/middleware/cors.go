package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured origins. A "*" entry anywhere in the list
// means any origin. Entries the CORS layer cannot express, such as the
// empty string left by a stray comma, never match any origin and are
// dropped.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	origins := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			config.AllowAllOrigins = true
			continue
		}
		if usableOrigin(origin) {
			origins = append(origins, origin)
		}
	}
	if !config.AllowAllOrigins {
		if len(origins) > 0 {
			config.AllowOrigins = origins
		} else {
			config.AllowOriginFunc = func(string) bool { return false }
		}
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-API-Key"}

	return cors.New(config)
}

// usableOrigin reports whether the CORS layer accepts the entry: a
// scheme-prefixed origin or a wildcard pattern.
func usableOrigin(origin string) bool {
	return strings.Contains(origin, "*") ||
		strings.HasPrefix(origin, "http://") ||
		strings.HasPrefix(origin, "https://")
}
