// Package validation valida los DTO de entrada con go-playground/validator y
// traduce los fallos a mensajes legibles por campo.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNameRe   = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	storeNameRe    = regexp.MustCompile(`^[a-zA-Z0-9\s\-&.,'()]+$`)
	storeAddressRe = regexp.MustCompile(`^[a-zA-Z0-9\s\-.,#()]+$`)
	phoneRe        = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)
	categoryRe     = regexp.MustCompile(`^[a-zA-Z0-9\s\-&]+$`)
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// FieldError fallo de un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors conjunto de fallos de validación de una petición.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

// Single construye un error de validación de un solo campo.
func Single(field, message string) *Errors {
	return &Errors{Fields: []FieldError{{Field: field, Message: message}}}
}

// Messages lo implementan los DTO que definen sus propios textos de error.
// Las claves son "campo.tag" o, para cualquier tag, "campo".
type Messages interface {
	ValidationMessages() map[string]string
}

// Validator envuelve validator.Validate con las reglas propias de la plataforma.
type Validator struct {
	v *validator.Validate
}

// New registra las reglas personalizadas y usa el nombre JSON de cada campo.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// Las reglas de formato aceptan el vacío; la obligatoriedad la decide "required".
	regexRule := func(re *regexp.Regexp) validator.Func {
		return func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || re.MatchString(s)
		}
	}
	_ = v.RegisterValidation("personname", regexRule(personNameRe))
	_ = v.RegisterValidation("storename", regexRule(storeNameRe))
	_ = v.RegisterValidation("storeaddress", regexRule(storeAddressRe))
	_ = v.RegisterValidation("phone", regexRule(phoneRe))
	_ = v.RegisterValidation("category", regexRule(categoryRe))
	_ = v.RegisterValidation("emailaddr", regexRule(emailRe))
	_ = v.RegisterValidation("website", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || v.Var(s, "http_url") == nil
	})

	return &Validator{v: v}
}

// Struct valida s y devuelve *Errors con un mensaje por campo fallido.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var custom map[string]string
	if m, ok := s.(Messages); ok {
		custom = m.ValidationMessages()
	}

	out := &Errors{}
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		out.Fields = append(out.Fields, FieldError{Field: field, Message: message(fe, custom)})
	}
	return out
}

func message(fe validator.FieldError, custom map[string]string) string {
	if msg, ok := custom[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := custom[fe.Field()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required", "required_if":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "eqfield":
		return fe.Field() + " does not match"
	case "emailaddr":
		return "Please provide a valid email address"
	default:
		return fe.Field() + " is invalid"
	}
}
