package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/studentmarks/core/student"
)

var (
	orderingParam = "ordering"
	indexParam    = "index"
	nameParam     = "name"
)

type Ordering struct {
	Key student.SortKey
}

// Bind reads the `ordering` query param. An absent param leaves Key empty.
func (ord *Ordering) Bind(ctx echo.Context) error {
	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return nil
	}
	key, err := student.ParseSortKey(val)
	if err != nil {
		return err
	}
	ord.Key = key
	return nil
}

// bindIndex reads the `:index` path param. A malformed index cannot address any record.
func bindIndex(ctx echo.Context) (int, error) {
	i, err := strconv.Atoi(ctx.Param(indexParam))
	if err != nil {
		return 0, student.ErrNotFound
	}
	return i, nil
}
