package schedule

import "errors"

var (
	// ErrBlockNotFound é retornado quando o bloqueio não é encontrado
	ErrBlockNotFound = errors.New("blocked time not found")

	// ErrInvalidInput é retornado quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
