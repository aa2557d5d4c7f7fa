// Package httperr defines the two error kinds the API surfaces and their
// translation to the wire format {code, message}.
package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError signals that a referenced entity does not exist
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("The %s with id = %d does not exist in the database.", e.Entity, e.ID)
}

// NotFound builds a NotFoundError for the given entity type and id
func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// BadRequestError signals a domain rule violation caused by the request
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// BadRequest builds a BadRequestError with the given message
func BadRequest(message string) error {
	return &BadRequestError{Message: message}
}

// ErrorBody is the JSON error shape; code mirrors the HTTP status
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusCode maps an error to its HTTP status
func StatusCode(err error) int {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	var br *BadRequestError
	if errors.As(err, &br) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Write translates err into the {code, message} response body
func Write(w http.ResponseWriter, err error) {
	status := StatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorBody{Code: status, Message: message})
}
