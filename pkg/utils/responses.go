package utils

import (
	"encoding/json"
	"net/http"
)

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Detail string `json:"detail"`
}

// ResponseJSON writes an arbitrary payload with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK wrapped in the {"data": ...} envelope
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, dataEnvelope{Data: data})
}

// returns 201 Created wrapped in the {"data": ...} envelope
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, dataEnvelope{Data: data})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusBadRequest, errorEnvelope{Detail: detail})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusUnauthorized, errorEnvelope{Detail: detail})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusForbidden, errorEnvelope{Detail: detail})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusNotFound, errorEnvelope{Detail: detail})
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusConflict, errorEnvelope{Detail: detail})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusInternalServerError, errorEnvelope{Detail: detail})
}
