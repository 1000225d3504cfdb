package dbmetrics

import "context"

type txContextKey struct{}

// WithTx coloca a transação ativa no contexto.
// Os repositórios recuperam o executor via GetExecutor, assim o mesmo código
// funciona dentro e fora de transações.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext devolve a transação ativa do contexto, se houver
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return tx, ok
}

// IsInTransaction indica se o contexto carrega uma transação ativa
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}

// GetExecutor devolve a transação do contexto ou o executor padrão
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return fallback
}
