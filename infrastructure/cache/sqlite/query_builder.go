// ABOUTME: Parameterized SQL builder and input validation for the SQLite recipe cache
// ABOUTME: Identifiers are checked against a strict pattern and all values are bound as parameters

package sqlite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"recipe-finder-api/core/interfaces"
)

var (
	safeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

	maxKeyLength   = 255
	maxValueLength = 1024 * 1024
)

// Suggestion keys carry raw user input, so these are expected now and then
var suspiciousPatterns = []string{"--", "/*", "*/", ";", "'", "\"", "\\", "\n", "\r", "\t"}

// QueryBuilder assembles a single statement. Invalid identifiers are
// recorded and surface from Build as an error.
type QueryBuilder struct {
	parts  []string
	params int
	err    error
}

// NewQueryBuilder creates a new query builder instance
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (qb *QueryBuilder) name(n string) string {
	if err := validateName(n); err != nil && qb.err == nil {
		qb.err = err
	}
	return n
}

func validateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("name too long: %s (max 64 characters)", name)
	}
	if !safeNamePattern.MatchString(name) {
		return fmt.Errorf("invalid name: %s (only alphanumeric and underscore allowed)", name)
	}
	return nil
}

// Select starts a SELECT of the given columns, or * when none are given
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	if len(columns) == 0 {
		qb.parts = append(qb.parts, "SELECT *")
		return qb
	}
	for _, c := range columns {
		qb.name(c)
	}
	qb.parts = append(qb.parts, "SELECT "+strings.Join(columns, ", "))
	return qb
}

// From adds the FROM clause
func (qb *QueryBuilder) From(table string) *QueryBuilder {
	qb.parts = append(qb.parts, "FROM "+qb.name(table))
	return qb
}

// Where adds a condition bound to a parameter. Conditions are joined with AND.
func (qb *QueryBuilder) Where(column, operator string) *QueryBuilder {
	switch operator {
	case "=", "!=", "<", "<=", ">", ">=":
	default:
		if qb.err == nil {
			qb.err = fmt.Errorf("unsupported operator: %s", operator)
		}
		operator = "="
	}

	keyword := "WHERE"
	for _, p := range qb.parts {
		if strings.HasPrefix(p, "WHERE ") {
			keyword = "AND"
			break
		}
	}
	qb.parts = append(qb.parts, fmt.Sprintf("%s %s %s ?", keyword, qb.name(column), operator))
	qb.params++
	return qb
}

// InsertOrReplace starts an upsert of the given columns
func (qb *QueryBuilder) InsertOrReplace(table string, columns ...string) *QueryBuilder {
	for _, c := range columns {
		qb.name(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	qb.parts = append(qb.parts, fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		qb.name(table), strings.Join(columns, ", "), placeholders))
	qb.params += len(columns)
	return qb
}

// Delete starts a DELETE from the table
func (qb *QueryBuilder) Delete(table string) *QueryBuilder {
	qb.parts = append(qb.parts, "DELETE FROM "+qb.name(table))
	return qb
}

// Build returns the statement and the number of parameters it expects
func (qb *QueryBuilder) Build() (string, int, error) {
	if qb.err != nil {
		return "", 0, qb.err
	}
	return strings.Join(qb.parts, " "), qb.params, nil
}

// cacheQueries holds the statements the cache runs
type cacheQueries struct {
	get     string
	set     string
	delete  string
	cleanup string
}

func buildCacheQueries(table string) (*cacheQueries, error) {
	var q cacheQueries
	var err error

	if q.get, _, err = NewQueryBuilder().Select("value").From(table).Where("key", "=").Where("expiry", ">").Build(); err != nil {
		return nil, err
	}
	if q.set, _, err = NewQueryBuilder().InsertOrReplace(table, "key", "value", "expiry").Build(); err != nil {
		return nil, err
	}
	if q.delete, _, err = NewQueryBuilder().Delete(table).Where("key", "=").Build(); err != nil {
		return nil, err
	}
	if q.cleanup, _, err = NewQueryBuilder().Delete(table).Where("expiry", "<=").Build(); err != nil {
		return nil, err
	}
	return &q, nil
}

// ValidateKey rejects keys that cannot be stored and warns on suspicious ones
func ValidateKey(key string, logger interfaces.Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	if logger == nil {
		return nil
	}
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(key, pattern) {
			logger.Warn("Suspicious pattern detected in cache key", map[string]interface{}{
				"pattern":     pattern,
				"key_length":  len(key),
				"key_preview": truncateKey(key),
			})
		}
	}
	return nil
}

func truncateKey(key string) string {
	const maxPreview = 50
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}

// ValidateValue rejects empty and oversized values
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}
	return nil
}
