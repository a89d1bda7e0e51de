package httperr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status  int      `json:"-"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details []string) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{
		Status:  status,
		Message: msg,
		Errors:  details,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// ValidationMessages lists one line per failed field; other binding errors
// (malformed JSON, wrong types) collapse into a single line.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return []string{"request body is malformed or has fields of the wrong type"}
	}

	msgs := make([]string, 0, len(validateErrs))
	for _, fe := range validateErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is required", field)
	case "max":
		return fmt.Sprintf("field %s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("field %s must be at least %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("field %s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("field %s must be less than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("field %s is not valid", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

var jsonFieldNamesOnce sync.Once

// UseJSONFieldNames makes validation messages name fields the way clients send them.
// The validator is shared by every engine in the process, so it is configured once.
func UseJSONFieldNames() {
	jsonFieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
	})
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}
