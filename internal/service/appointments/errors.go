package appointments

import "errors"

var (
	// ErrAppointmentNotFound é retornado quando o agendamento não é encontrado
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus é retornado quando o status informado é inválido
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput é retornado quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
