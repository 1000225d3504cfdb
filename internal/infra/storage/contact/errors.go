package contact

import "errors"

var (
	// ErrMessageNotFound é retornado quando a mensagem não é encontrada
	ErrMessageNotFound = errors.New("contact.repository: message not found")

	// ErrBuildQuery é retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("contact.repository: failed to build query")

	// ErrExecQuery é retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("contact.repository: failed to execute query")

	// ErrScanRow é retornado quando a leitura do resultado falha
	ErrScanRow = errors.New("contact.repository: failed to scan row")
)
