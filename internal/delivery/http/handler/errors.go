package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"medifind/pkg/apperror"
	"medifind/pkg/response"
)

// writeError maps the core error classes onto HTTP responses. Handlers
// check their own not-found sentinels first for a friendlier message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *apperror.ValidationError
	var nferr *apperror.NotFoundError

	switch {
	case errors.As(err, &verr):
		response.ValidationError(w, verr.Fields)
	case errors.As(err, &nferr):
		response.NotFound(w, "")
	case apperror.IsPersistence(err):
		response.ServiceUnavailable(w, "")
	default:
		response.InternalServerError(w, fallback)
	}
}

// writeDecodeError reports a body field with the wrong JSON type as a field
// error. messages overrides the default text per field. Other decode
// failures are a plain bad request.
func writeDecodeError(w http.ResponseWriter, err error, messages map[string]string) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		response.BadRequest(w, "Invalid request body")
		return
	}

	msg, ok := messages[typeErr.Field]
	if !ok {
		msg = typeErr.Field + " has an invalid type"
	}
	response.ValidationError(w, map[string]string{typeErr.Field: msg})
}

// symptomIDs accepts both ?ids=a,b and ?ids=a&ids=b.
func symptomIDs(r *http.Request) []string {
	ids := []string{}
	for _, raw := range r.URL.Query()["ids"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
