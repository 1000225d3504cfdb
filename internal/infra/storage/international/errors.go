package international

import "errors"

var (
	// ErrWindowNotFound é retornado quando nenhuma janela cobre a data
	ErrWindowNotFound = errors.New("international.repository: window not found")

	// ErrBuildQuery é retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("international.repository: failed to build query")

	// ErrExecQuery é retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("international.repository: failed to execute query")

	// ErrScanRow é retornado quando a leitura do resultado falha
	ErrScanRow = errors.New("international.repository: failed to scan row")
)
