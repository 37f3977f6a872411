package response

import (
	"github.com/gin-gonic/gin"

	"github.com/moodtrack/moodjournal/pkg/apperr"
)

// Envelope is the uniform JSON shape for non-paginated responses.
type Envelope struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message,omitempty"`
	Data      any                `json:"data,omitempty"`
	ErrorCode string             `json:"errorCode,omitempty"`
	Errors    []apperr.FieldError `json:"errors,omitempty"`
	RequestID string             `json:"requestId,omitempty"`
}

// ListEnvelope is the flat shape used by paginated listings.
type ListEnvelope struct {
	Success   bool   `json:"success"`
	Count     int    `json:"count"`
	Total     int    `json:"total"`
	Page      int    `json:"page"`
	Pages     int    `json:"pages"`
	Data      any    `json:"data"`
	RequestID string `json:"requestId,omitempty"`
}

// OK writes a success envelope.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString("request_id"),
	})
}

// Page writes a paginated listing.
func Page(c *gin.Context, status int, data any, count, total, page, pages int) {
	c.JSON(status, ListEnvelope{
		Success:   true,
		Count:     count,
		Total:     total,
		Page:      page,
		Pages:     pages,
		Data:      data,
		RequestID: c.GetString("request_id"),
	})
}

// Fail writes an error envelope.
func Fail(c *gin.Context, status int, message string, code string, fields []apperr.FieldError) {
	c.JSON(status, Envelope{
		Success:   false,
		Message:   message,
		ErrorCode: code,
		Errors:    fields,
		RequestID: c.GetString("request_id"),
	})
}
