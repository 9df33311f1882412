package storage

import (
	"regexp"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"bakery/pkg/domain/model"
)

const (
	mysqlErrBadNull      = 1048
	mysqlErrDupEntry     = 1062
	mysqlErrBadValue     = 1366
	mysqlErrDataTooLong  = 1406
	mysqlErrNoReferenced = 1452
)

var (
	mysqlKeyPattern    = regexp.MustCompile(`for key '(?:[^'.]*\.)?([^']+)'`)
	mysqlColumnPattern = regexp.MustCompile("[Cc]olumn '([^']+)'")
	mysqlFKPattern     = regexp.MustCompile("FOREIGN KEY \\(`([^`]+)`\\)")
	sqliteFieldPattern = regexp.MustCompile(`constraint failed: \w+\.(\w+)`)
)

// translate maps constraint violations to model.ConflictError and wraps
// everything else with the failed operation.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if conflict := fromMySQL(mysqlErr); conflict != nil {
			return conflict
		}
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		if conflict := fromSQLite(sqliteErr); conflict != nil {
			return conflict
		}
	}

	return errors.Wrap(err, op)
}

func fromMySQL(err *mysql.MySQLError) *model.ConflictError {
	switch err.Number {
	case mysqlErrDupEntry:
		return &model.ConflictError{Field: submatch(mysqlKeyPattern, err.Message), Reason: "already exists"}
	case mysqlErrBadNull:
		return &model.ConflictError{Field: submatch(mysqlColumnPattern, err.Message), Reason: "is required"}
	case mysqlErrBadValue, mysqlErrDataTooLong:
		return &model.ConflictError{Field: submatch(mysqlColumnPattern, err.Message), Reason: "has an invalid value"}
	case mysqlErrNoReferenced:
		return &model.ConflictError{Field: submatch(mysqlFKPattern, err.Message), Reason: "references a missing record"}
	}
	return nil
}

func fromSQLite(err *sqlite.Error) *model.ConflictError {
	field := submatch(sqliteFieldPattern, err.Error())
	switch err.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return &model.ConflictError{Field: field, Reason: "already exists"}
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return &model.ConflictError{Field: field, Reason: "is required"}
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return &model.ConflictError{Field: field, Reason: "references a missing record"}
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return &model.ConflictError{Field: field, Reason: "has an invalid value"}
	}
	return nil
}

func submatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
