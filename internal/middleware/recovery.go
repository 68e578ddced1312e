package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"syscall"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery перехватывает панику обработчика. Текст паники попадает в журнал
// запроса через ключ error. Если клиент отключился или ответ уже начат,
// тело ошибки не пишется.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// сервер сам обрывает соединение без записи в журнал
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			msg := fmt.Sprint(rec)
			c.Set(errorKey, "panic: "+msg)

			callerID := ""
			if caller, ok := CallerFrom(c); ok {
				callerID = caller.ID
			}

			if connectionLost(rec) {
				log.LogAttrs(c.Request.Context(), logger.WarnLevel, "client connection lost",
					logger.String("request_id", c.GetString(requestIDKey)),
					logger.String("path", c.Request.URL.Path),
					logger.String("error", msg),
				)
				c.Abort()
				return
			}

			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("caller_id", callerID),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("error", msg),
				logger.String("stack", string(debug.Stack())),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error":  "internal server error",
				"reason": "internal",
			})
		}()

		c.Next()
	}
}

func connectionLost(rec any) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}
