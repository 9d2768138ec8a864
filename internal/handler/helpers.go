package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"stockroom/internal/apierror"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails; the
// caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps a service error onto the wire. Domain errors carry their
// own status; anything else is a 500 whose cause is logged but never shown.
func respondError(c *gin.Context, err error) {
	if apiErr := apierror.As(err); apiErr != nil {
		if apiErr.Kind == apierror.KindStorage {
			log.Error().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Err(apiErr.Err).
				Msg("storage error")
			c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
			return
		}
		c.JSON(apiErr.Status(), apierror.New(apiErr.Detail))
		return
	}
	log.Error().
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
}
