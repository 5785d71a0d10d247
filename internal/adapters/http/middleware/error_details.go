package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Haleralex/pricecalc/internal/adapters/http/common"
)

// ErrorDetails определяет, попадает ли текст ошибки в тело 500.
// Включается только в development.
func ErrorDetails(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		common.SetExposeErrors(c, expose)
		c.Next()
	}
}
