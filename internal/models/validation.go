package models

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	err := v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate runs the schema rules declared in the model struct tags.
func Validate(doc interface{}) error {
	return validate.Struct(doc)
}

// ValidateFields runs the rules of the named Go fields only. It is for
// documents that are still missing fields filled in at write time.
func ValidateFields(doc interface{}, fields ...string) error {
	return validate.StructPartial(doc, fields...)
}
