package response

import (
	"go-ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope
type Response struct {
	Success    bool               `json:"success"`
	Data       interface{}        `json:"data,omitempty"`
	Message    string             `json:"message,omitempty"`
	Error      string             `json:"error,omitempty"`
	Messages   []string           `json:"messages,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
	RequestID  string             `json:"requestId,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Page sends a success response carrying pagination metadata
func Page(c *gin.Context, code int, data interface{}, pagination domain.Pagination) {
	c.JSON(code, Response{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
		RequestID:  requestID(c),
	})
}

// Error sends an error response; messages carries per-field validation
// details when present
func Error(c *gin.Context, code int, errMsg string, messages []string) {
	c.JSON(code, Response{
		Success:   false,
		Error:     errMsg,
		Messages:  messages,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
