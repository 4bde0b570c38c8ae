package shared

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/studentmarks/core"
	"github.com/trezcool/studentmarks/core/student"
	"github.com/trezcool/studentmarks/services/logger"
	"github.com/trezcool/studentmarks/storage/database"
	"github.com/trezcool/studentmarks/storage/database/sqlx"
	"github.com/trezcool/studentmarks/storage/flatfile"
)

// App holds the dependencies shared by the API server and the manager CLI.
type App struct {
	Conf       *core.Config
	Logger     core.Logger
	Store      *student.Store
	Translator ut.Translator

	db    *sqlx.DB
	flush func()
}

// NewApp reads the config, sets up the logger and loads the student records.
// Records live in the data file unless a database is configured.
// Records that cannot be loaded are logged and leave the store empty.
func NewApp(workDir ...string) (*App, error) {
	conf, err := core.NewConfig(workDir...)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	return NewAppWithConfig(conf)
}

func NewAppWithConfig(conf *core.Config) (*App, error) {
	logger, flush, err := logsvc.New(conf)
	if err != nil {
		return nil, errors.Wrap(err, "setting up logger")
	}

	app := &App{
		Conf:   conf,
		Logger: logger,
		flush:  flush,
	}

	var repo student.Repository
	source := conf.DataFile
	if conf.Database.Enabled() {
		if app.db, err = database.Open(conf.Database); err != nil {
			flush()
			return nil, errors.Wrap(err, "setting up database")
		}
		repo = sqlxrepos.NewStudentRepository(app.db)
		source = conf.Database.Address() + "/" + conf.Database.Name
	} else {
		var seed []student.Student
		if conf.SeedSample {
			seed = student.SampleStudents()
		}
		repo = flatfile.NewStudentRepository(conf.DataFile, seed...)
	}

	validate, translator := student.NewValidator()
	app.Translator = translator
	app.Store, err = student.Open(repo, validate, translator)
	if err != nil {
		logger.Error(fmt.Sprintf("could not load %s, starting with no records", source), err)
	} else {
		logger.Debug(fmt.Sprintf("loaded %d students from %s", app.Store.Len(), source))
	}
	return app, nil
}

// Close closes the database, if any, and flushes the logger.
func (app *App) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.Logger.Error("could not close database", err)
		}
		app.db = nil
	}
	if app.flush != nil {
		app.flush()
		app.flush = nil
	}
}
