// Package httperr maps the service error taxonomy onto HTTP responses.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/services"
)

func Status(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindAlreadyMember:
		return http.StatusConflict
	case services.KindPermissionDenied:
		return http.StatusForbidden
	case services.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the error as a transient-notification payload. The kind
// travels with the message so clients can distinguish a retryable outage
// from a rule rejection they must not retry.
func Respond(c *gin.Context, err error) {
	c.JSON(Status(err), gin.H{
		"error": services.MessageOf(err),
		"kind":  services.KindOf(err).String(),
	})
}
