package storage

import (
	"errors"
	"strconv"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("record not found")

// StoreError is the typed datastore error surfaced by the repos. The four
// text fields mirror what relational backends report (error code, message,
// extra details, remediation hint); any of them may be empty.
type StoreError struct {
	Code    string
	Message string
	Details string
	Hint    string
}

func (e *StoreError) Error() string {
	pieces := make([]string, 0, 4)
	for _, s := range []string{e.Code, e.Message, e.Details, e.Hint} {
		if strings.TrimSpace(s) != "" {
			pieces = append(pieces, s)
		}
	}
	if len(pieces) == 0 {
		return "datastore error"
	}
	return strings.Join(pieces, " | ")
}

// wrapStoreError converts a driver error into a StoreError, preserving the
// sqlite error code when one is available.
func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return &StoreError{
			Code:    strconv.Itoa(int(sqliteErr.Code)),
			Message: err.Error(),
		}
	}
	return &StoreError{Message: err.Error()}
}

// IsSchemaDrift reports whether an upsert failure looks like the destination
// schema lagging the code: the error text names one of the optional tweet
// columns, or generically reports a missing column. The reconciler uses this
// to decide whether a reduced-field retry is worth attempting.
func IsSchemaDrift(err error) bool {
	if err == nil {
		return false
	}

	var haystack string
	var se *StoreError
	if errors.As(err, &se) {
		haystack = strings.ToLower(strings.Join([]string{se.Code, se.Message, se.Details, se.Hint}, " "))
	} else {
		haystack = strings.ToLower(err.Error())
	}

	if strings.Contains(haystack, "quoted_tweet") || strings.Contains(haystack, "public_metrics") {
		return true
	}
	if strings.Contains(haystack, "column") && strings.Contains(haystack, "schema cache") {
		return true
	}
	// sqlite spellings of a missing destination column.
	return strings.Contains(haystack, "no column named") || strings.Contains(haystack, "no such column")
}
