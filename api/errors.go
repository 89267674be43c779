package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	shared "blogzone-cli/shared"
)

// apiErrBody covers the two error shapes the backend returns: a JSON object
// with a message field, or a bare string.
type apiErrBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	errType := shared.ApiErrorTypeOther
	switch {
	case r.StatusCode == http.StatusUnauthorized:
		errType = shared.ApiErrorTypeInvalidToken
	case r.StatusCode == http.StatusBadRequest || r.StatusCode == http.StatusConflict:
		errType = shared.ApiErrorTypeValidation
	}

	msg := strings.TrimSpace(string(errBody))

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body apiErrBody
		if err := json.Unmarshal(errBody, &body); err != nil {
			log.Printf("Error unmarshalling error response: %v\n", err)
		} else if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}

	if msg == "" {
		msg = "the server returned an error"
	}

	return &shared.ApiError{
		Type:   errType,
		Status: r.StatusCode,
		Msg:    msg,
	}
}
