package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"footballclub/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// RegisterBindingTags makes validation errors name fields by their json or
// form key instead of the Go field name.
func RegisterBindingTags() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

// respondValidation answers 422 for a body or path value that could not be
// bound.
func respondValidation(c *gin.Context, err error) {
	_ = c.Error(err)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Tag()
		if fe.Tag() == "required" {
			msg = "is required"
		}
		fields = append(fields, FieldError{Field: fe.Field(), Error: msg})
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Validation failed", "errors": fields})
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.JSON(status, gin.H{"detail": err.Error()})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondValidation(c, errors.New("invalid id "+strconv.Quote(c.Param("id"))))
		return 0, false
	}
	return uint(id), true
}
