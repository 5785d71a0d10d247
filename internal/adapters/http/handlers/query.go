// Package handlers содержит HTTP handlers для REST API.
//
// Handler - это Adapter в терминах Clean Architecture:
// - читает query string в Command DTO
// - вызывает Use Case
// - пишет результат или преобразует ошибку в HTTP ответ
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/pricecalc/internal/adapters/http/common"
	"github.com/Haleralex/pricecalc/internal/adapters/http/middleware"
)

// ============================================
// Query Parameter Helpers
// ============================================

// RequireQuery читает указанные query параметры.
//
// Параметр считается отсутствующим, только если нет ключа; пустое значение
// уходит в доменную валидацию. Если чего-то не хватает, пишется 400 со
// списком обязательных имён и полученных параметров, и возвращается false.
func RequireQuery(c *gin.Context, names ...string) (map[string]string, bool) {
	values := make(map[string]string, len(names))
	missing := false

	for _, name := range names {
		value, ok := c.GetQuery(name)
		if !ok {
			missing = true
			continue
		}
		values[name] = value
	}

	if missing {
		common.MissingParameters(c, names, values)
		return nil, false
	}
	return values, true
}

// respond записывает исход расчёта в метрики и отдаёт body или ошибку.
func respond(c *gin.Context, operation string, err error, body func() any) {
	middleware.RecordCalculation(operation, err)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, body())
}
