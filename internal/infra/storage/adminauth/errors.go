package adminauth

import "errors"

var (
	// ErrUserNotFound é retornado quando o usuário não é encontrado
	ErrUserNotFound = errors.New("adminauth.repository: user not found")

	// ErrSessionNotFound é retornado quando a sessão não é encontrada
	ErrSessionNotFound = errors.New("adminauth.repository: session not found")

	// ErrBuildQuery é retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("adminauth.repository: failed to build query")

	// ErrExecQuery é retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("adminauth.repository: failed to execute query")

	// ErrScanRow é retornado quando a leitura do resultado falha
	ErrScanRow = errors.New("adminauth.repository: failed to scan row")
)
