package response

import "fmt"

// AppError 携带 HTTP 状态码与对外信息的业务错误
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError 创建业务错误
func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

// WrapError 包装底层错误
func WrapError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}
