package response

import (
	"sara-api/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Envelope is the shape of every API response.
type Envelope struct {
	Status   string `json:"status"`
	Code     int    `json:"code"`
	Total    *int64 `json:"total,omitempty"`
	Response any    `json:"response"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func statusFor(code int) string {
	if code >= 200 && code < 300 {
		return StatusSuccess
	}
	return StatusError
}

func New(code int, payload any, total *int64) Envelope {
	return Envelope{
		Status:   statusFor(code),
		Code:     code,
		Total:    total,
		Response: payload,
	}
}

func Success(c *gin.Context, code int, payload any) {
	c.JSON(code, New(code, payload, nil))
}

func SuccessWithTotal(c *gin.Context, code int, payload any, total int64) {
	c.JSON(code, New(code, payload, &total))
}

func Message(c *gin.Context, code int, message string) {
	c.JSON(code, New(code, MessageBody{Message: message}, nil))
}

// Error writes err through apperror.ToHTTP so nothing unformatted leaves.
func Error(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Message(c, httpErr.Status, httpErr.Message)
}

// Abort is Error for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
