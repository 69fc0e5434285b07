package models

import (
	"database/sql/driver"

	go_sqlite "github.com/glebarez/go-sqlite"
	"golang.org/x/text/cases"
)

// FoldFunction is the name of the SQL function that case folds text the
// same way Fold does. SQLite itself only folds ASCII characters.
const FoldFunction = "fold"

func init() {
	go_sqlite.MustRegisterDeterministicScalarFunction(FoldFunction, 1, foldValue)
}

// Fold returns s in a form that compares equal for all casings of it.
func Fold(s string) string {
	return cases.Fold().String(s)
}

func foldValue(_ *go_sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return Fold(v), nil
	case []byte:
		return Fold(string(v)), nil
	}

	return args[0], nil
}
