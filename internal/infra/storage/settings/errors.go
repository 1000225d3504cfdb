package settings

import "errors"

var (
	// ErrNotFound é retornado quando a chave não existe
	ErrNotFound = errors.New("settings.repository: key not found")

	// ErrBuildQuery é retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery é retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow é retornado quando a leitura do resultado falha
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
