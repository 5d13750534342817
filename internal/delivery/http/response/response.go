package response

import (
	"github.com/gin-gonic/gin"

	"recruitment-portal-backend/pkg/apperror"
)

// Envelope is the JSON shape every endpoint responds with. ErrorKind
// carries the apperror classification so clients can branch on a stable
// value instead of parsing messages.
type Envelope struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Data      interface{}   `json:"data,omitempty"`
	ErrorKind apperror.Kind `json:"error_kind,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	id, _ := c.Get("RequestID")
	s, _ := id.(string)
	return s
}

// Success writes a successful envelope with the given payload.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error writes a failure envelope classified by kind.
func Error(c *gin.Context, code int, message string, kind apperror.Kind) {
	c.JSON(code, Envelope{
		Success:   false,
		Message:   message,
		ErrorKind: kind,
		RequestID: requestID(c),
	})
}
