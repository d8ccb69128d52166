package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paymill-mirror/src/models"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.NewPMError(models.WrongParams, "bad"), http.StatusBadRequest},
		{models.NewPMError(models.NotFound, "missing"), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		writeError(rec, tt.err, "failed")
		if rec.Code != tt.want {
			t.Errorf("%v: expected %d, got %d", tt.err, tt.want, rec.Code)
		}
	}
}
