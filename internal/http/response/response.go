// Package response содержит типы и функции для формирования JSON‑ответов
// HTTP‑обработчиков. Форматы исторические и различаются по разделам API:
// каталог и учетные записи отвечают булевым полем status, реестр заявок —
// строковым status при регистрации и полем success при выдаче списка.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response стандартный ответ каталога и учетных записей.
// Status — признак успеха; Error и Message взаимоисключающие по смыслу;
// Data — данные ответа при успехе.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// RegistrationResponse исторический формат ответа регистрации заявки
// со строковым статусом "success" либо "error".
type RegistrationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListResponse исторический формат выдачи списка заявок.
type ListResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OKWithData возвращает успешный Response с переданными данными.
func OKWithData(data any) Response {
	return Response{
		Status: true,
		Data:   data,
	}
}

// OKWithMessage возвращает успешный Response с текстом подтверждения.
func OKWithMessage(msg string) Response {
	return Response{
		Status:  true,
		Message: msg,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: false,
		Error:  msg,
	}
}

// RegistrationSuccess возвращает успешный ответ регистрации заявки.
func RegistrationSuccess(msg string) RegistrationResponse {
	return RegistrationResponse{
		Status:  "success",
		Message: msg,
	}
}

// RegistrationError возвращает ответ регистрации заявки с ошибкой.
func RegistrationError(msg string) RegistrationResponse {
	return RegistrationResponse{
		Status:  "error",
		Message: msg,
	}
}

// ValidationError формирует Response на основе ошибок валидации.
// Каждое нарушение переводится в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Status: false,
		Error:  strings.Join(errsMsgs, ", "),
	}
}
