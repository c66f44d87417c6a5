// Package httperr renders failures in the API's flat error shape and records
// the original error on the gin context for the request log.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape every error path shares: a flat message under
// "error" plus an optional detail payload.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
}

// AbortWithError writes the response and stops the handler chain. The
// underlying err never reaches the client; it rides along as a public gin
// error so the logging middleware can report what actually happened.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError requires a non-nil error")
	}

	resp := Response{Status: status, Message: msg, Detail: detail}
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
