package catalog

import "errors"

var (
	// ErrServiceNotFound é retornado quando o serviço não é encontrado
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput é retornado quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
