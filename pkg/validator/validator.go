package validator

import (
	"dental-clinic-service/internal/domain/enum"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the validator with the product's enum membership tags
// registered. Validation messages are Portuguese, matching the product locale.
func NewValidator() *CustomValidator {
	v := validator.New()

	enumTags := map[string]enum.Set{
		"payment_method": enum.PaymentMethods,
		"specialty":      enum.Specialties,
		"employee_role":  enum.EmployeeRoles,
		"procedure":      enum.Procedures,
		"br_state":       enum.BrazilianStates,
	}
	for tag, set := range enumTags {
		set := set
		v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return set.Contains(fl.Field().String())
		})
	}

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " é obrigatório"
			case "email":
				errors[field] = field + " deve ser um e-mail válido"
			case "min":
				errors[field] = field + " deve ter no mínimo " + e.Param() + " caracteres"
			case "max":
				errors[field] = field + " deve ter no máximo " + e.Param() + " caracteres"
			case "gte":
				errors[field] = field + " deve ser maior ou igual a " + e.Param()
			case "lte":
				errors[field] = field + " deve ser menor ou igual a " + e.Param()
			case "payment_method":
				errors[field] = field + " não é uma forma de pagamento válida"
			case "specialty":
				errors[field] = field + " não é uma especialidade válida"
			case "employee_role":
				errors[field] = field + " não é um cargo válido"
			case "procedure":
				errors[field] = field + " não é um procedimento válido"
			case "br_state":
				errors[field] = field + " não é uma UF válida"
			default:
				errors[field] = field + " é inválido"
			}
		}
	}

	return errors
}
