package shared

type ApiErrorType string

const (
	ApiErrorTypeInvalidToken ApiErrorType = "invalid_token"
	ApiErrorTypeValidation   ApiErrorType = "validation"
	ApiErrorTypeOther        ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

// ClientAccount is one signed-in account stored in accounts.json.
type ClientAccount struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// ClientAuth is the active session stored in auth.json.
type ClientAuth struct {
	ClientAccount
}
