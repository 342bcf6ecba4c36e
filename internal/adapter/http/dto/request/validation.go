package request

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"quotation_service/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the catalog enum tags to gin's validator and makes
// field errors report JSON names. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		rules := map[string]validator.Func{
			"servicecategory": func(fl validator.FieldLevel) bool {
				return entities.ServiceCategory(fl.Field().String()).Valid()
			},
			"billingtype": func(fl validator.FieldLevel) bool {
				return entities.BillingType(fl.Field().String()).Valid()
			},
			"discounttype": func(fl validator.FieldLevel) bool {
				return entities.DiscountType(fl.Field().String()).Valid()
			},
		}
		for tag, fn := range rules {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

// ValidationMessage flattens binding errors into a single client message.
// Anything that is not a validator error (malformed JSON) gets a generic text.
func ValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid request body"
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fieldMessage(fe))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "email":
		return field + " must be a valid email"
	case "servicecategory":
		return field + " must be a known service category"
	case "billingtype":
		return field + " must be one-time or monthly"
	case "discounttype":
		return field + " must be percentage or fixed"
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
