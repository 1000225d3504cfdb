package contact

import "errors"

var (
	// ErrMessageNotFound é retornado quando a mensagem não é encontrada
	ErrMessageNotFound = errors.New("contact message not found")

	// ErrInvalidInput é retornado quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
