package psqlbuilder

import "github.com/Masterminds/squirrel"

// Builders do squirrel já configurados com placeholders $1, $2, ... do PostgreSQL.
// Todos os repositórios montam SQL através deste pacote.

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select cria um SELECT com placeholder $
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert cria um INSERT com placeholder $
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update cria um UPDATE com placeholder $
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete cria um DELETE com placeholder $
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
