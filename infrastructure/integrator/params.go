package integrator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// DecodeParams converte o mapa de parâmetros do provedor na struct out e valida as tags `validate`.
// Campos ausentes ou inválidos viram *domain.ValidationError listando os nomes dos parâmetros.
func DecodeParams(source domain.Source, params domain.AuthParams, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(map[string]any(params)); err != nil {
		return domain.NewValidationError(source, "invalid params: "+err.Error())
	}

	if err := validate.Struct(out); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field())
			}
			return domain.NewValidationError(source, "missing or invalid params", fields...)
		}
		return domain.NewValidationError(source, err.Error())
	}

	return nil
}
