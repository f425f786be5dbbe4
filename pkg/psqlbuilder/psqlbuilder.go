package psqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Поддерживаемые драйверы БД
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// New возвращает squirrel builder с плейсхолдерами под драйвер:
// $1, $2... для postgres и ? для sqlite
func New(driver string) (squirrel.StatementBuilderType, error) {
	switch driver {
	case DriverPostgres:
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar), nil
	case DriverSQLite:
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question), nil
	default:
		return squirrel.StatementBuilderType{}, fmt.Errorf("psqlbuilder: unsupported driver %q", driver)
	}
}

// MustNew как New, но паникует на неизвестном драйвере
func MustNew(driver string) squirrel.StatementBuilderType {
	sb, err := New(driver)
	if err != nil {
		panic(err)
	}
	return sb
}
