package dto

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/GioMjds/paynal-prajik/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// sortColumn matches a bare column name. Sorting is rendered into the statement, never bound.
var sortColumn = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string. Values that do not
// parse are ignored. With withDefaults set, missing paging and ordering fall back to the first
// page of newest rows.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	q.Page = positiveInt(query.Get(constant.RequestParamPage), q.Page)
	q.Limit = min(positiveInt(query.Get(constant.RequestParamLimit), q.Limit), constant.MaxValueLimit)

	if sortBy := strings.ToLower(query.Get(constant.RequestParamSortBy)); sortColumn.MatchString(sortBy) {
		q.SortBy = sortBy
	}

	switch sortDir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); sortDir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = sortDir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}

	if q.SortBy == constant.Empty {
		q.SortBy = constant.DefaultValueSortBy
	}

	if q.SortDir == constant.Empty {
		q.SortDir = constant.DefaultValueSortDir
	}
}

// AllowSort drops SortBy unless it is one of columns.
func (q *QueryParams) AllowSort(columns ...string) {
	for _, col := range columns {
		if q.SortBy == col {
			return
		}
	}

	q.SortBy = constant.Empty
}

func positiveInt(raw string, fallback int) int {
	if raw == constant.Empty {
		return fallback
	}

	if value, err := strconv.Atoi(raw); err == nil && value > 0 {
		return value
	}

	return fallback
}
