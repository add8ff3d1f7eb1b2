package service

import "errors"

// 服務層錯誤，handler 依此對應 HTTP 狀態碼
var (
	ErrValidation         = errors.New("missing required fields")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)
