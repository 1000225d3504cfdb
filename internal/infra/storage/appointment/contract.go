package appointment

import "github.com/edumrsdw-devops/cadoreClinic/pkg/dbmetrics"

// Reutilizamos as interfaces de execução do dbmetrics para trabalhar com o banco
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
