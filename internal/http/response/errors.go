package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
)

// MapError translates service errors into the HTTP contract: validation
// failures come back as a field-to-messages map, membership toggles as the
// short {"errors": ...} shape, everything unexpected as a generic 500.
func MapError(c *gin.Context, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperr.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, apperr.ErrForbidden):
		RespondError(c, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, apperr.ErrDuplicateMembership),
		errors.Is(err, apperr.ErrMembershipNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, apperr.ErrEmptyCart):
		c.String(http.StatusBadRequest, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
