package middleware

import (
	"log"
	"net/http"

	"grid-scenarios/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware handles panics and errors
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("ErrorHandler: recovered panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		msg := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewError("INTERNAL_ERROR", msg))
	})
}
