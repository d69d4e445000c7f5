package resp

import (
	"errors"
	"net/http"

	"github.com/ChPurna2003/CravingConnect/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// Error maps service-layer error kinds onto HTTP status codes. Anything that
// is not an apperr is a 500.
func Error(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	switch ae.Kind {
	case apperr.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": ae.Msg})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": ae.Msg})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": ae.Msg})
	case apperr.KindBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": ae.Msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": ae.Msg})
	}
}
