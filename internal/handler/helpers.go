package handler

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/maesedev/dealership-project/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps a service error to its HTTP status via the apierror
// taxonomy. Untyped errors become a generic 500 and are pushed onto the Gin
// error list for the logging middleware.
func respondError(c *gin.Context, err error) {
	kind, ok := apierror.KindOf(err)
	if !ok {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	status := http.StatusBadRequest
	switch kind {
	case apierror.KindNotFound:
		status = http.StatusNotFound
	case apierror.KindForbidden:
		status = http.StatusForbidden
	case apierror.KindUnauthorized:
		status = http.StatusUnauthorized
	}
	c.JSON(status, apierror.New(err.Error()))
}

// pagination reads skip/limit query params with sane bounds.
func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return skip, limit
}
