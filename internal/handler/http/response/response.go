package response

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Response struct {
	Status      string            `json:"status"`
	Message     string            `json:"message,omitempty"`
	Data        interface{}       `json:"data,omitempty"`
	Errors      map[string]string `json:"errors,omitempty"`
	ErrorDetail string            `json:"error_detail,omitempty"`
}

var exposeErrorDetail atomic.Bool

// SetExposeErrorDetail controls whether 500 responses carry the underlying
// error text. Enabled outside production.
func SetExposeErrorDetail(expose bool) {
	exposeErrorDetail.Store(expose)
}

// JSON writes payload as-is with the given status code.
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := Response{
			Status:  StatusError,
			Message: "Failed to encode response",
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Response{
		Status: StatusSuccess,
		Data:   data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusOK, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Error responses
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{
		Status:  StatusError,
		Message: message,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	JSON(w, http.StatusBadRequest, Response{
		Status:  StatusError,
		Message: "Invalid input data",
		Errors:  details,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func TooManyRequests(w http.ResponseWriter, message string) {
	Error(w, http.StatusTooManyRequests, message)
}

func InternalServerError(w http.ResponseWriter, message string, err error) {
	resp := Response{
		Status:  StatusError,
		Message: message,
	}
	if err != nil && exposeErrorDetail.Load() {
		resp.ErrorDetail = err.Error()
	}
	JSON(w, http.StatusInternalServerError, resp)
}
