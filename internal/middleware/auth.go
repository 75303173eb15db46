package middleware

import (
	"github.com/gin-gonic/gin"
)

// Authentication is a placeholder global middleware. It currently allows all
// requests; the dashboard runs behind the deployment's own ingress auth.
func Authentication(c *gin.Context) {
	c.Next()
}
