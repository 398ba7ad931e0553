package response

import (
	"encoding/json"
	"net/http"

	"gearbase/shared/constant"
	"gearbase/shared/failure"
	"gearbase/shared/logger"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing the payload as the JSON body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithNotFound sends a not-found response echoing the identifier that missed,
// e.g. {"error": "not found", "id": "guitars:abc"}.
func WithNotFound(writer http.ResponseWriter, field, value string) {
	msg := "not found"
	response(writer, http.StatusNotFound, map[string]string{
		"error": msg,
		field:   value,
	})
}

// WithNoContent sends an empty 204 response
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithRedirect sends a redirect to the given location
func WithRedirect(writer http.ResponseWriter, code int, location string) {
	writer.Header().Set(constant.RequestHeaderLocation, location)
	writer.WriteHeader(code)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
