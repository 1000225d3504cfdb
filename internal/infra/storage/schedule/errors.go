package schedule

import "errors"

var (
	// ErrWorkingHoursNotFound é retornado quando o dia não tem horário ativo
	ErrWorkingHoursNotFound = errors.New("schedule.repository: working hours not found")

	// ErrBlockNotFound é retornado quando o bloqueio não é encontrado
	ErrBlockNotFound = errors.New("schedule.repository: blocked time not found")

	// ErrBuildQuery é retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery é retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow é retornado quando a leitura do resultado falha
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
