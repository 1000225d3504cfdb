package auth

import "errors"

var (
	// ErrInvalidCredentials é retornado quando usuário ou senha não conferem
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound é retornado quando a sessão não existe ou expirou
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrInvalidInput é retornado quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
