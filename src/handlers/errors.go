package handlers

import (
	"net/http"

	"paymill-mirror/src/models"
)

func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case models.IsWrongParams(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case models.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
