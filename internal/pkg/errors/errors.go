package errors

import "net/http"

// ErrorResp carries an HTTP status code alongside the message so handlers
// can map usecase failures straight onto responses.
type ErrorResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return &ErrorResp{Code: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &ErrorResp{Code: http.StatusUnauthorized, Message: msg}
}

func ForbiddenError(msg string) error {
	return &ErrorResp{Code: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &ErrorResp{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &ErrorResp{Code: http.StatusConflict, Message: msg}
}

func UnprocessableEntity(msg string) error {
	return &ErrorResp{Code: http.StatusUnprocessableEntity, Message: msg}
}

func InternalServerError(msg string) error {
	return &ErrorResp{Code: http.StatusInternalServerError, Message: msg}
}

// BadGateway marks upstream provider failures. Callers may retry the same
// request; no local state has been changed when this is returned.
func BadGateway(msg string) error {
	return &ErrorResp{Code: http.StatusBadGateway, Message: msg}
}

// GetCode extracts the HTTP status code from an error, defaulting to 500.
func GetCode(err error) int {
	if resp, ok := err.(*ErrorResp); ok {
		return resp.Code
	}
	return http.StatusInternalServerError
}
