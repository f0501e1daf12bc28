package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rhumruin/dopynion-bot/internal/middleware"
)

var errMissingGameID = errors.New("missing " + middleware.GameIDHeader + " header")

// gameIDFrom returns the game identifier the server put in the request headers.
func gameIDFrom(r *http.Request) (string, error) {
	id := r.Header.Get(middleware.GameIDHeader)
	if id == "" {
		return "", errMissingGameID
	}
	return id, nil
}

// decodeBody parses the JSON request body into v.
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
