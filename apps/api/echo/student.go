package echoapi

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/studentmarks/core/student"
)

type (
	studentApi struct {
		store *student.Store
	}

	// choice is a student label along with the index addressing it.
	choice struct {
		Index int    `json:"index"`
		Label string `json:"label"`
	}

	indexedResult struct {
		Index int `json:"index"`
		student.Result
	}
)

func registerStudentAPI(g *echo.Group, store *student.Store) {
	api := studentApi{store: store}

	sg := g.Group("/students", serializeMiddleware(new(sync.Mutex)))
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/summary", api.summary)
	sg.GET("/choices", api.choices)
	sg.GET("/highest", api.highest)
	sg.GET("/lowest", api.lowest)
	sg.GET("/search", api.search)

	// detail endpoints
	sg.GET("/:index", api.retrieve)
	sg.PUT("/:index", api.update)
	sg.DELETE("/:index", api.destroy)
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	var ord Ordering
	if err := ord.Bind(ctx); err != nil {
		return err
	}

	students := api.store.FindAll()
	if ord.Key != "" {
		var err error
		if students, err = api.store.SortedBy(ord.Key); err != nil {
			return errors.Wrap(err, "sorting students")
		}
	}
	return ctx.JSON(http.StatusOK, student.NewResults(students))
}

func (api *studentApi) summary(ctx echo.Context) error {
	sum, err := api.store.Summary()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *studentApi) choices(ctx echo.Context) error {
	labels := api.store.Choices()
	choices := make([]choice, 0, len(labels))
	for i, label := range labels {
		choices = append(choices, choice{Index: i, Label: label})
	}
	return ctx.JSON(http.StatusOK, choices)
}

func (api *studentApi) highest(ctx echo.Context) error {
	st, err := api.store.Highest()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, student.NewResult(st))
}

func (api *studentApi) lowest(ctx echo.Context) error {
	st, err := api.store.Lowest()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, student.NewResult(st))
}

func (api *studentApi) search(ctx echo.Context) error {
	i, st, err := api.store.Search(ctx.QueryParam(nameParam))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, indexedResult{Index: i, Result: student.NewResult(st)})
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	i, err := bindIndex(ctx)
	if err != nil {
		return err
	}
	st, err := api.store.FindByIndex(i)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, student.NewResult(st))
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}

	st, err := api.store.Add(data)
	if err != nil {
		return errors.Wrap(err, "adding student")
	}
	return ctx.JSON(http.StatusCreated, student.NewResult(st))
}

func (api *studentApi) update(ctx echo.Context) error {
	i, err := bindIndex(ctx)
	if err != nil {
		return err
	}
	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}

	st, err := api.store.Update(i, data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, student.NewResult(st))
}

func (api *studentApi) destroy(ctx echo.Context) error {
	i, err := bindIndex(ctx)
	if err != nil {
		return err
	}

	st, err := api.store.Delete(i)
	if err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.JSON(http.StatusOK, student.NewResult(st))
}
