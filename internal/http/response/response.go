// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Формат ответа повторяет
// контракт API: поле status со значением "success" либо "error" и текстовое
// поле message.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

const (
	// StatusSuccess — значение статуса для успешного ответа.
	StatusSuccess = "success"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "error"
)

// SuccessResponse описывает успешный JSON‑ответ сервера.
// Поле Data заполняется опционально, например созданной заявкой.
type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse описывает JSON‑ответ сервера с ошибкой.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"invalid request body"`
}

// Success возвращает успешный ответ с сообщением.
func Success(msg string) SuccessResponse {
	return SuccessResponse{
		Status:  StatusSuccess,
		Message: msg,
	}
}

// SuccessWithData возвращает успешный ответ с сообщением и данными.
func SuccessWithData(msg string, data any) SuccessResponse {
	return SuccessResponse{
		Status:  StatusSuccess,
		Message: msg,
		Data:    data,
	}
}

// Error возвращает ответ с ошибкой и переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status:  StatusError,
		Message: msg,
	}
}

// ValidationError формирует ответ со статусом error на основе ошибок валидации.
// Каждое нарушение превращается в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{
		Status:  StatusError,
		Message: strings.Join(errsMsgs, ", "),
	}
}
