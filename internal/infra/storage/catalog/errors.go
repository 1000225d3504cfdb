package catalog

import "errors"

var (
	// ErrServiceNotFound é retornado quando o serviço não é encontrado
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrBuildQuery é retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery é retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow é retornado quando a leitura do resultado falha
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
