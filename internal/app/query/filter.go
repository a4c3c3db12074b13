package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Filters are raw query-string values keyed by filter name.
type Filters map[string]string

// Predicate narrows a query with one filter value.
type Predicate func(db *gorm.DB, value string) *gorm.DB

// FilterSet maps recognized filter keys to predicates. Keys absent from
// the set are ignored, so arbitrary query parameters are harmless.
type FilterSet map[string]Predicate

// Apply runs every recognized filter against the query.
func (fs FilterSet) Apply(db *gorm.DB, filters Filters) *gorm.DB {
	for key, value := range filters {
		if pred, ok := fs[key]; ok {
			db = pred(db, value)
		}
	}
	return db
}

// FiltersFromValues extracts filter candidates from a parsed query string,
// taking the first value of each parameter. Reserved paging/sorting
// parameters are dropped here so filter sets never see them.
func FiltersFromValues(values url.Values) Filters {
	filters := make(Filters, len(values))
	for key := range values {
		switch key {
		case "page", "per_page", "perpage", "sort":
			continue
		}
		if v := values.Get(key); v != "" {
			filters[key] = v
		}
	}
	return filters
}

// Equal matches a column exactly.
func Equal(column string) Predicate {
	return func(db *gorm.DB, value string) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// EqualUint matches a numeric column; non-numeric input matches nothing
// being filtered, i.e. the filter is ignored.
func EqualUint(column string) Predicate {
	return func(db *gorm.DB, value string) *gorm.DB {
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return db
		}
		return db.Where(column+" = ?", n)
	}
}

// InSubquery matches rows whose column appears in a one-parameter
// subquery, for join-by-name filters without an explicit JOIN.
func InSubquery(column, subquery string) Predicate {
	return func(db *gorm.DB, value string) *gorm.DB {
		return db.Where(column+" IN ("+subquery+")", value)
	}
}

// BoolToken maps two literal tokens onto a boolean column; any other
// value is ignored.
func BoolToken(column, trueToken, falseToken string) Predicate {
	return func(db *gorm.DB, value string) *gorm.DB {
		switch value {
		case trueToken:
			return db.Where(column+" = ?", true)
		case falseToken:
			return db.Where(column+" = ?", false)
		}
		return db
	}
}

// Search matches a column by case-insensitive substring.
func Search(column string) Predicate {
	return func(db *gorm.DB, value string) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
	}
}

// CountEquals compares a correlated count subquery against an integer
// value. Non-integer values are ignored rather than rejected.
func CountEquals(subquery string, args ...interface{}) Predicate {
	return func(db *gorm.DB, value string) *gorm.DB {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return db
		}
		bound := make([]interface{}, 0, len(args)+1)
		bound = append(bound, args...)
		bound = append(bound, n)
		return db.Where("("+subquery+") = ?", bound...)
	}
}

// DateEquals matches a timestamp column within one calendar day (UTC),
// which behaves the same on postgres and sqlite. Values must be
// YYYY-MM-DD; anything else is ignored.
func DateEquals(column string) Predicate {
	return func(db *gorm.DB, value string) *gorm.DB {
		day, err := time.Parse("2006-01-02", value)
		if err != nil {
			return db
		}
		return db.Where(column+" >= ? AND "+column+" < ?", day, day.AddDate(0, 0, 1))
	}
}
