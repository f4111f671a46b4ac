package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/St1cky1/taskboard/internal/entity"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeServiceError - единая раскладка ошибок сервисов по HTTP статусам.
// ErrTaskNotFound покрывает и чужие задачи: существование не раскрываем.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "task not found")
	case errors.Is(err, entity.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, entity.ErrInvalidTaskData):
		writeError(w, http.StatusBadRequest, "invalid task data")
	case errors.Is(err, entity.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "invalid date")
	case errors.Is(err, entity.ErrNoFieldsToUpdate):
		writeError(w, http.StatusBadRequest, "no fields to update")
	case errors.Is(err, entity.ErrInvalidUserData):
		writeError(w, http.StatusBadRequest, "invalid user data")
	case errors.Is(err, entity.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, "user already exists")
	case errors.Is(err, entity.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "invalid credentials")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
