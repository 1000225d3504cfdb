package create_appointment

import "errors"

var (
	// ErrInvalidInput é retornado quando os dados de entrada são inválidos
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound é retornado quando o serviço não existe
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrDayClosed é retornado quando a clínica não atende na data
	ErrDayClosed = errors.New("create_appointment: clinic is closed on this date")

	// ErrOutsideWorkingHours é retornado quando o horário não cabe no expediente
	ErrOutsideWorkingHours = errors.New("create_appointment: time is outside working hours")

	// ErrDateBlocked é retornado quando o dia inteiro está bloqueado
	ErrDateBlocked = errors.New("create_appointment: date is blocked")

	// ErrSlotConflict é retornado quando o horário conflita com outro
	// agendamento ou bloqueio pontual
	ErrSlotConflict = errors.New("create_appointment: slot conflict")

	// ErrInternal é retornado em erros internos do usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
