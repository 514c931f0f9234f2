package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
	"github.com/pankaj-shinde04/store-rating/internal/application/validation"
)

// fieldMessages devuelve campo → mensaje de un error de validación.
func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	var verr *validation.Errors
	require.ErrorAs(t, err, &verr)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:            "Mary O'Neil-Smith",
		Email:           "mary@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRegisterRequest(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name   string
		mutate func(r *dto.RegisterRequest)
		field  string
		want   string
	}{
		{"nombre con dígitos", func(r *dto.RegisterRequest) { r.Name = "John3" }, "name", "Name can only contain letters, spaces, hyphens, and apostrophes"},
		{"nombre corto", func(r *dto.RegisterRequest) { r.Name = "J" }, "name", "Name must be between 2 and 60 characters"},
		{"nombre vacío", func(r *dto.RegisterRequest) { r.Name = "" }, "name", "Name is required"},
		{"email sin dominio", func(r *dto.RegisterRequest) { r.Email = "mary@example" }, "email", "Please provide a valid email address"},
		{"password corta", func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }, "password", "Password must be between 6 and 50 characters"},
		{"confirmación distinta", func(r *dto.RegisterRequest) { r.ConfirmPassword = "secret2" }, "confirmPassword", "Passwords do not match"},
		{"rol admin", func(r *dto.RegisterRequest) { r.Role = "admin" }, "role", "Role must be either normal_user or store_owner"},
		{"dueño sin dirección", func(r *dto.RegisterRequest) { r.Role = "store_owner" }, "address", "Address is required for store owners"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegister()
			tc.mutate(&in)
			msgs := fieldMessages(t, v.Struct(&in))
			assert.Equal(t, tc.want, msgs[tc.field])
			assert.Len(t, msgs, 1)
		})
	}

	t.Run("válido", func(t *testing.T) {
		in := validRegister()
		assert.NoError(t, v.Struct(&in))

		in.Role = "store_owner"
		in.Address = "12 Main Street, Springfield"
		assert.NoError(t, v.Struct(&in))

		in.Role, in.Address, in.ConfirmPassword = "normal_user", "", ""
		assert.NoError(t, v.Struct(&in), "confirmPassword y address son opcionales para normal_user")
	})
}

func validStore() dto.CreateStoreRequest {
	return dto.CreateStoreRequest{
		Name:     "Joe's Cafe & Bakery (Downtown)",
		Address:  "#12 Main Street, Springfield",
		Phone:    "+1 (555) 123-4567",
		Email:    "joe@cafe.com",
		Website:  "https://cafe.com",
		Category: "Coffee & Tea",
	}
}

func TestCreateStoreRequest(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name   string
		mutate func(r *dto.CreateStoreRequest)
		field  string
		want   string
	}{
		{"nombre con símbolos", func(r *dto.CreateStoreRequest) { r.Name = "Shop<script>" }, "name", "Store name contains invalid characters"},
		{"nombre vacío", func(r *dto.CreateStoreRequest) { r.Name = "" }, "name", "Store name is required"},
		{"dirección con símbolos", func(r *dto.CreateStoreRequest) { r.Address = "12 Main Street $$$" }, "address", "Address contains invalid characters"},
		{"dirección corta", func(r *dto.CreateStoreRequest) { r.Address = "Short" }, "address", "Address must be between 10 and 400 characters"},
		{"teléfono con letras", func(r *dto.CreateStoreRequest) { r.Phone = "call me" }, "phone", "Please provide a valid phone number"},
		{"categoría con signos", func(r *dto.CreateStoreRequest) { r.Category = "Food!" }, "category", "Category must be up to 50 characters and contain only letters, numbers, spaces, hyphens, and ampersands"},
		{"web no http", func(r *dto.CreateStoreRequest) { r.Website = "ftp://cafe.com" }, "website", "Please provide a valid website URL"},
		{"email inválido", func(r *dto.CreateStoreRequest) { r.Email = "joe at cafe" }, "email", "Please provide a valid email address"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validStore()
			tc.mutate(&in)
			msgs := fieldMessages(t, v.Struct(&in))
			assert.Equal(t, tc.want, msgs[tc.field])
		})
	}

	t.Run("opcionales vacíos", func(t *testing.T) {
		in := dto.CreateStoreRequest{Name: "Green Cafe", Address: "40 Elm Avenue, Springfield"}
		assert.NoError(t, v.Struct(&in))
	})
	t.Run("completa", func(t *testing.T) {
		in := validStore()
		assert.NoError(t, v.Struct(&in))
	})
}

func TestCreateRatingRequest(t *testing.T) {
	v := validation.New()

	for _, value := range []int{0, 6, -1} {
		msgs := fieldMessages(t, v.Struct(&dto.CreateRatingRequest{StoreID: 5, RatingValue: value}))
		assert.Equal(t, "Rating must be between 1 and 5", msgs["rating_value"], "valor %d", value)
	}

	msgs := fieldMessages(t, v.Struct(&dto.CreateRatingRequest{RatingValue: 3}))
	assert.Equal(t, "Valid store ID is required", msgs["store_id"])

	assert.NoError(t, v.Struct(&dto.CreateRatingRequest{StoreID: 5, RatingValue: 5, ReviewText: "Great"}))
}

type plainRequest struct {
	Operation string `json:"operation" validate:"required,oneof=approve reject"`
	Note      string `json:"note" validate:"max=3"`
	Confirm   string `json:"confirm" validate:"omitempty,eqfield=Operation"`
}

type messagedRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}

func (messagedRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required": "Name please",
		"name":          "Name is wrong",
	}
}

func TestMessagePrecedence(t *testing.T) {
	v := validation.New()

	t.Run("campo.tag antes que campo", func(t *testing.T) {
		msgs := fieldMessages(t, v.Struct(&messagedRequest{}))
		assert.Equal(t, "Name please", msgs["name"])
	})
	t.Run("campo para el resto de tags", func(t *testing.T) {
		msgs := fieldMessages(t, v.Struct(&messagedRequest{Name: "ab"}))
		assert.Equal(t, "Name is wrong", msgs["name"])
	})
	t.Run("mensajes por defecto", func(t *testing.T) {
		msgs := fieldMessages(t, v.Struct(&plainRequest{Operation: "delete", Note: "toolong", Confirm: "reject"}))
		assert.Equal(t, "operation must be one of: approve, reject", msgs["operation"])
		assert.Equal(t, "note must not exceed 3 characters", msgs["note"])
		assert.Equal(t, "confirm does not match", msgs["confirm"])

		msgs = fieldMessages(t, v.Struct(&plainRequest{}))
		assert.Equal(t, "operation is required", msgs["operation"])
	})
}

func TestErrors_ErrorJoinsMessages(t *testing.T) {
	v := validation.New()
	err := v.Struct(&plainRequest{Operation: "delete", Note: "toolong"})
	require.Error(t, err)
	assert.Equal(t, "operation must be one of: approve, reject, note must not exceed 3 characters", err.Error())

	single := validation.Single("storeId", "Store ID is required")
	assert.Equal(t, "Store ID is required", single.Error())
}
