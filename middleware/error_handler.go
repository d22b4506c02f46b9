package middleware

import (
	"strconv"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors pushed onto the gin context into JSON
// responses. Handlers call c.Error(err) and abort; this middleware owns the
// wire format.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()

			log.Warnw("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", statusCode,
				"errorType", string(appError.Type),
				"message", appError.Message,
				"detail", appError.Detail,
			)

			response := gin.H{
				"type":    string(appError.Type),
				"message": appError.Message,
				"code":    strconv.Itoa(statusCode),
			}
			// Details stay server-side except where the client needs them
			// to correct its request.
			if appError.Detail != "" && (gin.IsDebugging() ||
				appError.Type == errors.ValidationError ||
				appError.Type == errors.NotFoundError ||
				appError.Type == errors.ItineraryNotFoundError ||
				appError.Type == errors.AccountLockedError ||
				appError.Type == errors.AuthError) {
				response["details"] = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Warnw("Request binding failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", err,
			)

			response := gin.H{
				"type":    string(errors.ValidationError),
				"message": "Failed to bind request",
				"code":    "400",
			}
			if gin.IsDebugging() {
				response["details"] = err.Error()
			}
			c.JSON(400, response)
			return
		}

		log.Errorw("Unexpected server error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
		)

		response := gin.H{
			"type":    string(errors.ServerError),
			"message": "Internal Server Error",
			"code":    "500",
		}
		if gin.IsDebugging() {
			response["details"] = err.Error()
		}
		c.JSON(500, response)
	}
}
