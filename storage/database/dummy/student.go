package dummydb

import (
	"github.com/trezcool/studentmarks/core"
	"github.com/trezcool/studentmarks/core/student"
)

const dsn = "dummy://students"

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) Load() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]student.Student, len(repo.db.rows))
	copy(students, repo.db.rows)
	return students, nil
}

func (repo *studentRepository) Save(students []student.Student) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if repo.db.saveErr != nil {
		return core.NewIOError("write", dsn, repo.db.saveErr)
	}
	rows := make([]student.Student, len(students))
	copy(rows, students)
	repo.db.rows = rows
	repo.db.saves++
	return nil
}
