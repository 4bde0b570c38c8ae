package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/studentmarks/core"
	"github.com/trezcool/studentmarks/core/student"
)

const (
	tableName = "student"

	selectStudents = `SELECT code, name, coursework1, coursework2, coursework3, exam FROM student ORDER BY position`
	deleteStudents = `DELETE FROM student`
	insertStudent  = `INSERT INTO student (position, code, name, coursework1, coursework2, coursework3, exam)
VALUES (:position, :code, :name, :coursework1, :coursework2, :coursework3, :exam)`
)

// studentRow is a student along with its position in the store.
type studentRow struct {
	Position int
	student.Student
}

type studentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository returns a student.Repository keeping the students in the `student` table, in store order.
func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) Load() ([]student.Student, error) {
	students := make([]student.Student, 0)
	if err := repo.db.Select(&students, selectStudents); err != nil {
		return nil, core.NewIOError("select", tableName, err)
	}
	return students, nil
}

// Save replaces every row of the table within a transaction.
func (repo *studentRepository) Save(students []student.Student) (err error) {
	tx, err := repo.db.Beginx()
	if err != nil {
		return core.NewIOError("begin", tableName, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				err = errors.Wrapf(err, "rolling back: %v", rbErr)
			}
		}
	}()

	if _, err = tx.Exec(deleteStudents); err != nil {
		return core.NewIOError("delete", tableName, err)
	}
	for i, st := range students {
		if _, err = tx.NamedExec(insertStudent, studentRow{Position: i, Student: st}); err != nil {
			return core.NewIOError("insert", tableName, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return core.NewIOError("commit", tableName, err)
	}
	return nil
}
