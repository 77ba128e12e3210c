package apperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes the JSON body for err and aborts the request.
func Respond(c *gin.Context, err error) {
	var (
		ve *ValidationError
		nf *NotFoundError
		ue *UploadError
		pe *PersistenceError
	)

	switch {
	case errors.As(err, &ve):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  ve.Error(),
			"code":   "validation",
			"fields": ve.Fields,
		})
	case errors.As(err, &nf):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":        nf.Error() + ", please check the reference and search again",
			"code":         "not_found",
			"search_again": true,
		})
	case errors.As(err, &ue):
		c.AbortWithStatusJSON(ue.Status(), gin.H{
			"error":  ue.Error(),
			"code":   "upload",
			"reason": ue.Reason,
		})
	case errors.As(err, &pe):
		log.Printf("persistence failure: %v", pe)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "could not save your changes, please try again",
			"code":  "persistence",
		})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
