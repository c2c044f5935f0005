package iocache

import (
	"fmt"
	"regexp"

	"github.com/codescout/codescout/schema"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// validateTableName guards against SQL injection through table identifiers.
func validateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %s", name)
	}
	return nil
}

// quoteTableName quotes a validated table identifier for the backend.
func quoteTableName(backend schema.DatabaseBackend, name string) (string, error) {
	if err := validateTableName(name); err != nil {
		return "", err
	}
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name), nil
	default:
		return fmt.Sprintf(`"%s"`, name), nil
	}
}

// getPlaceholder returns the positional parameter marker for the backend.
func getPlaceholder(backend schema.DatabaseBackend, position int) string {
	if backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", position)
	}
	return "?"
}
