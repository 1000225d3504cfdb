package get_available_slots

import "errors"

var (
	// ErrInvalidInput é retornado quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal é retornado em erros internos do usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
