package migrate

import "errors"

var (
	// ErrApplySchema é retornado quando a criação do esquema falha
	ErrApplySchema = errors.New("migrate: failed to apply schema")

	// ErrSeed é retornado quando a carga inicial de dados falha
	ErrSeed = errors.New("migrate: failed to seed data")
)
