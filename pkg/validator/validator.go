package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/doacao-api/internal/model"
)

// MsgRequiredFields is returned whenever a required field is absent.
const MsgRequiredFields = "Campos obrigatórios não preenchidos"

var registerOnce sync.Once

// Register installs the domain validation tags on gin's validator engine.
// It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "blood_type", func(fl validator.FieldLevel) bool {
			return model.BloodType(fl.Field().String()).Valid()
		})
		mustRegister(v, "donor_sex", func(fl validator.FieldLevel) bool {
			return model.Sex(fl.Field().String()).Valid()
		})
		mustRegister(v, "iso_date", func(fl validator.FieldLevel) bool {
			_, err := model.ParseDate(fl.Field().String())
			return err == nil
		})
		mustRegister(v, "local_datetime", func(fl validator.FieldLevel) bool {
			_, err := model.ParseLocalTime(fl.Field().String())
			return err == nil
		})
	})
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Message turns a binding error into the text shown to the user.
// Missing required fields take precedence over malformed ones.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return MsgRequiredFields
			}
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return "Campos inválidos: " + strings.Join(fields, ", ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return "Campo inválido: " + typeErr.Field
	}
	return "Dados inválidos"
}
