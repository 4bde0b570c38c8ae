package flatfile

import (
	"os"

	"github.com/trezcool/studentmarks/core"
	"github.com/trezcool/studentmarks/core/student"
)

type studentRepository struct {
	path string
	seed []student.Student
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

// NewStudentRepository returns a student.Repository backed by the file at `path`.
// When the file does not exist, Load writes `seed` to it, or returns no students if `seed` is empty.
func NewStudentRepository(path string, seed ...student.Student) student.Repository {
	return &studentRepository{path: path, seed: seed}
}

func (repo *studentRepository) Load() ([]student.Student, error) {
	file, err := os.Open(repo.path)
	if os.IsNotExist(err) {
		if len(repo.seed) == 0 {
			return []student.Student{}, nil
		}
		if err := repo.Save(repo.seed); err != nil {
			return nil, err
		}
		students := make([]student.Student, len(repo.seed))
		copy(students, repo.seed)
		return students, nil
	}
	if err != nil {
		return nil, core.NewIOError("open", repo.path, err)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer file.Close()

	students, err := Decode(file)
	if err != nil {
		if core.IsParseError(err) {
			return nil, err
		}
		return nil, core.NewIOError("read", repo.path, err)
	}
	return students, nil
}

func (repo *studentRepository) Save(students []student.Student) error {
	file, err := os.Create(repo.path)
	if err != nil {
		return core.NewIOError("create", repo.path, err)
	}
	if err := Encode(file, students); err != nil {
		_ = file.Close()
		return core.NewIOError("write", repo.path, err)
	}
	if err := file.Close(); err != nil {
		return core.NewIOError("close", repo.path, err)
	}
	return nil
}
