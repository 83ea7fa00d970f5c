// Package response holds the helpers producing the API's JSON bodies.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error response shape.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a success response with the given payload.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error response body of the form {"error": message}.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// Unauthorized writes the 401 error body.
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, "Unauthorized")
}

// Unprocessable writes the generic 422 error body.
func Unprocessable(c echo.Context) error {
	return Error(c, http.StatusUnprocessableEntity, "Unprocessable Entity")
}
