package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "too many requests"
	default:
		return "internal server error"
	}
}

// Errors отдает клиенту первую ошибку запроса. Текст приватных ошибок скрывается за текстом статуса.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		var msg string
		switch {
		case firstErr.IsType(gin.ErrorTypePublic):
			// Meta - текст для клиента, если обработчик не хочет отдавать всю цепочку ошибки
			if meta, ok := firstErr.Meta.(string); ok {
				msg = meta
			} else {
				msg = firstErr.Error()
			}
		case firstErr.IsType(gin.ErrorTypeBind):
			msg = firstErr.Error()
		default:
			msg = statusErrorText(c.Writer.Status())
		}

		// API отвечает JSON, текст - только по явному запросу клиента
		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(c.Writer.Status(), msg)
		} else {
			c.JSON(c.Writer.Status(), gin.H{"error": msg})
		}
		c.Abort()
	}
}
