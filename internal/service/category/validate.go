package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"category-service/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	TitleMinLength = 3
	TitleMaxLength = 50
)

// Violations is the field-level report returned by Validate.
type Violations struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func (v *Violations) Error() string {
	if len(v.FormErrors) > 0 {
		return v.FormErrors[0]
	}
	keys := make([]string, 0, len(v.FieldErrors))
	for k := range v.FieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msgs := v.FieldErrors[k]; len(msgs) > 0 {
			return k + ": " + msgs[0]
		}
	}
	return "invalid data"
}

const requiredMessage = "Required"

// typeName names the JSON type of a decoded value.
func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func typeMismatch(want string, value any) validation.Error {
	return validation.NewError("validation_invalid_type", "Expected "+want+", received "+typeName(value))
}

var isString = validation.By(func(value interface{}) error {
	if _, ok := value.(string); !ok {
		return typeMismatch("string", value)
	}
	return nil
})

var categoryRules = validation.Map(
	validation.Key("title",
		isString,
		// length rules skip empty values
		validation.Required.Error("title must be at least 3 characters long"),
		validation.RuneLength(TitleMinLength, 0).Error("title must be at least 3 characters long"),
		validation.RuneLength(0, TitleMaxLength).Error("title must be at most 50 characters long"),
	),
).AllowExtraKeys()

// Validate checks a decoded JSON payload against the write schema. It is pure
// and never touches the store.
func Validate(payload any) (domain.CategoryInput, *Violations) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return domain.CategoryInput{}, &Violations{
			FormErrors:  []string{typeMismatch("object", payload).Error()},
			FieldErrors: map[string][]string{},
		}
	}

	if err := validation.Validate(obj, categoryRules); err != nil {
		return domain.CategoryInput{}, toViolations(err)
	}
	return domain.CategoryInput{Title: obj["title"].(string)}, nil
}

func toViolations(err error) *Violations {
	out := &Violations{FormErrors: []string{}, FieldErrors: map[string][]string{}}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		for field, fe := range fieldErrs {
			msg := fe.Error()
			var ve validation.Error
			if errors.As(fe, &ve) && ve.Code() == validation.ErrKeyMissing.Code() {
				msg = requiredMessage
			}
			out.FieldErrors[field] = append(out.FieldErrors[field], msg)
		}
		return out
	}
	out.FormErrors = append(out.FormErrors, err.Error())
	return out
}
