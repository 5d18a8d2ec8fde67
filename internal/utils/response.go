package utils

import (
	"encoding/json"
	"net/http"
)

// APIResponse est l'enveloppe JSON commune à toutes les réponses
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Success renvoie les données avec un status 200
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Error renvoie une erreur et log la cause interne (jamais exposée au client)
func Error(w http.ResponseWriter, status int, message string, err error) {
	LogError("[%d] %s: %v", status, message, err)
	JSON(w, status, APIResponse{Success: false, Error: message})
}

// ErrorSimple renvoie une erreur sans cause interne à logger
func ErrorSimple(w http.ResponseWriter, status int, message string) {
	LogError("[%d] %s", status, message)
	JSON(w, status, APIResponse{Success: false, Error: message})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
