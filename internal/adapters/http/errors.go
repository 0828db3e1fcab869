package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/facilitydesk/core/internal/infrastructure/logger"
)

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator that reports field names by their json tag
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{validator: v}
}

// ValidationDetail describes one rejected field
type ValidationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Validate validates structs and converts failures to a 422 HTTP error
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error()).SetInternal(err)
	}

	details := make([]ValidationDetail, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, validationDetail(fe))
	}

	return echo.NewHTTPError(http.StatusUnprocessableEntity, details).SetInternal(err)
}

func validationDetail(fe validator.FieldError) ValidationDetail {
	detail := ValidationDetail{
		Loc: []string{"body", fe.Field()},
	}

	switch fe.Tag() {
	case "required":
		detail.Msg = "field required"
		detail.Type = "value_error.missing"
	default:
		detail.Msg = fmt.Sprintf("failed on the %q rule", fe.Tag())
		detail.Type = "value_error." + fe.Tag()
	}

	return detail
}

// ErrorHandler renders every error as {"detail": ...}
func ErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code   = http.StatusInternalServerError
			detail interface{}
		)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			detail = he.Message
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		} else {
			detail = http.StatusText(code)
		}

		// Already rendered by an earlier middleware
		if c.Response().Committed {
			return
		}

		if code >= http.StatusInternalServerError {
			logger.Errorw("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{Detail: detail})
		}
		if err != nil {
			logger.Errorw("Error sending response", "error", err)
		}
	}
}
