// internal/middleware/recover.go

package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"

	"github.com/sirupsen/logrus"
)

// ErrorBody is the JSON answered for any unexpected failure.
type ErrorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Name    string `json:"name"`
}

// Recover turns a panic in the wrapped handler into a 500 with an ErrorBody.
func Recover(logger *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				body := errorBody(v)
				logger.WithFields(logrus.Fields{
					"path":       r.URL.Path,
					"error":      body.Detail,
					"type":       body.Name,
					"request_id": GetRequestID(r.Context()),
				}).Error("handler panicked")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(body)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func errorBody(v interface{}) ErrorBody {
	body := ErrorBody{Message: "Oops!"}
	switch e := v.(type) {
	case error:
		body.Detail = e.Error()
	default:
		body.Detail = fmt.Sprint(e)
	}
	if t := reflect.TypeOf(v); t != nil {
		body.Name = t.String()
	}
	return body
}
