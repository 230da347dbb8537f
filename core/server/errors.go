package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler returns the Fiber error handler. Framework errors (404, 405) keep
// their status and message. Other errors become a 500; their message is only
// exposed when debug is set.
func ErrorHandler(debug bool, logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			logger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
			if debug {
				message = err.Error()
			}
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(message)
	}
}
