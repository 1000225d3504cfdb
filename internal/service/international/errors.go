package international

import "errors"

var (
	// ErrWindowNotFound é retornado quando a janela não é encontrada
	ErrWindowNotFound = errors.New("international window not found")

	// ErrInvalidInput é retornado quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
