package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response é o envelope uniforme da API:
// {success, message?, data?, count?, error?, errors?}
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Count   *int         `json:"count,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Stack   string       `json:"stack,omitempty"`
}

// FieldError representa um erro de validação de campo
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewSuccessResponse cria uma resposta de sucesso com mensagem opcional
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewListResponse cria uma resposta de listagem com contagem
func NewListResponse(count int, data interface{}) Response {
	return Response{
		Success: true,
		Count:   &count,
		Data:    data,
	}
}

// NewErrorResponse cria uma resposta de erro com a mensagem dada
func NewErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

// NewGatewayErrorResponse cria a resposta 500 com a mensagem do gateway
// repassada verbatim no campo error (escolha deliberada da API)
func NewGatewayErrorResponse(message string, err error) Response {
	return Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	}
}

// NewValidationErrorResponse agrega todas as falhas de campo em uma resposta 400
func NewValidationErrorResponse(c *gin.Context, fieldErrors []FieldError) Response {
	return Response{
		Success: false,
		Message: T(c, "error.validation_failed"),
		Errors:  fieldErrors,
	}
}

// Tabela declarativa {campo -> {tag -> chave de mensagem}} consultada
// pelo tradutor genérico de erros do validator.
var fieldMessageKeys = map[string]map[string]string{
	"name": {
		"required": "validation.name.required",
		"min":      "validation.name.length",
		"max":      "validation.name.length",
	},
	"email": {
		"required": "validation.email.required",
		"email":    "validation.email.invalid",
	},
	"password": {
		"required": "validation.password.required",
		"min":      "validation.password.length",
	},
	"role": {
		"oneof": "validation.role.invalid",
	},
}

// TranslateValidationErrors converte os erros do validator em uma lista
// ordenada de {field, message}. Todas as falhas são coletadas; nada é
// interrompido no primeiro campo inválido. overrides permite que uma
// rota troque a mensagem de um par campo.tag (ex.: login).
func TranslateValidationErrors(c *gin.Context, err error, overrides map[string]string) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Corpo não-JSON ou tipo errado: sem detalhe por campo
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())

		key := ""
		if overrides != nil {
			key = overrides[field+"."+fe.Tag()]
		}
		if key == "" {
			if tags, ok := fieldMessageKeys[field]; ok {
				key = tags[fe.Tag()]
			}
		}

		var message string
		if key == "" {
			message = T(c, "validation.field.invalid", map[string]interface{}{"Field": field})
		} else {
			message = T(c, key)
		}

		fieldErrors = append(fieldErrors, FieldError{Field: field, Message: message})
	}

	return fieldErrors
}
