package student

import (
	"sort"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/studentmarks/core"
)

var (
	// errors
	ErrNotFound   = errors.New("student not found")
	ErrEmptyStore = errors.New("no student records available")
)

type (
	// Repository persists the whole list of students at once.
	Repository interface {
		// Load returns the persisted students in their stored order.
		Load() ([]Student, error)
		// Save replaces the persisted students with `students`.
		Save(students []Student) error
	}

	// Metric computes the value compared by Store.Extremal.
	Metric func(Student) float64

	Direction int

	SortKey string

	// Store owns the ordered list of students and keeps it in sync with its Repository.
	// It does no locking: callers must not use it concurrently.
	Store struct {
		repo       Repository
		validate   *validator.Validate
		translator ut.Translator
		students   []Student
	}
)

const (
	Max Direction = iota
	Min
)

const (
	SortByPercentage SortKey = "percentage" // descending
	SortByName       SortKey = "name"       // ascending
	SortByCode       SortKey = "code"       // ascending
)

var SortKeys = []SortKey{SortByPercentage, SortByName, SortByCode}

// ParseSortKey returns the SortKey named `s`.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(core.CleanString(s, true /* lower */))
	for _, k := range SortKeys {
		if k == key {
			return k, nil
		}
	}
	return "", core.NewValidationError(
		errors.Errorf("cannot sort by %q", s),
		core.FieldError{Field: "ordering", Error: "must be one of percentage, name or code"},
	)
}

// PercentageMetric is the Metric used for highest and lowest marks.
func PercentageMetric(s Student) float64 { return s.Percentage() }

// NewStore returns an empty Store. Call Load to populate it.
func NewStore(repo Repository, validate *validator.Validate, translator ut.Translator) *Store {
	return &Store{
		repo:       repo,
		validate:   validate,
		translator: translator,
	}
}

// Open returns a Store populated from `repo`.
// On error the returned Store is still usable, and empty.
func Open(repo Repository, validate *validator.Validate, translator ut.Translator) (*Store, error) {
	s := NewStore(repo, validate, translator)
	return s, s.Load()
}

// Load replaces the students in memory with the ones in the Repository.
// If loading fails the Store falls back to empty.
func (s *Store) Load() error {
	students, err := s.repo.Load()
	if err != nil {
		s.students = nil
		return errors.Wrap(err, "loading students")
	}
	s.students = students
	return nil
}

// Save writes every student to the Repository.
func (s *Store) Save() error {
	if err := s.repo.Save(s.FindAll()); err != nil {
		return errors.Wrap(err, "saving students")
	}
	return nil
}

func (s *Store) Len() int { return len(s.students) }

// FindAll returns a copy of the students in store order.
func (s *Store) FindAll() []Student {
	students := make([]Student, len(s.students))
	copy(students, s.students)
	return students
}

// FindByIndex returns the student at position `i` of FindAll.
func (s *Store) FindByIndex(i int) (Student, error) {
	if i < 0 || i >= len(s.students) {
		return Student{}, ErrNotFound
	}
	return s.students[i], nil
}

// Choices lists the labels of the students in store order, so that a selected position can be passed to FindByIndex.
func (s *Store) Choices() []string {
	labels := make([]string, 0, len(s.students))
	for _, st := range s.students {
		labels = append(labels, st.Label())
	}
	return labels
}

// Extremal returns the student with the highest or lowest `metric`.
// On ties, the first one in store order wins.
func (s *Store) Extremal(metric Metric, dir Direction) (Student, error) {
	if len(s.students) == 0 {
		return Student{}, ErrEmptyStore
	}
	best := s.students[0]
	bestVal := metric(best)
	for _, st := range s.students[1:] {
		val := metric(st)
		if (dir == Max && val > bestVal) || (dir == Min && val < bestVal) {
			best, bestVal = st, val
		}
	}
	return best, nil
}

func (s *Store) Highest() (Student, error) { return s.Extremal(PercentageMetric, Max) }

func (s *Store) Lowest() (Student, error) { return s.Extremal(PercentageMetric, Min) }

// SortedBy returns the students stably sorted by `key`. The Store is not modified.
func (s *Store) SortedBy(key SortKey) ([]Student, error) {
	var less func(a, b Student) bool
	switch key {
	case SortByPercentage:
		less = func(a, b Student) bool { return a.Percentage() > b.Percentage() }
	case SortByName:
		less = func(a, b Student) bool { return a.Name < b.Name }
	case SortByCode:
		less = func(a, b Student) bool { return a.Code < b.Code }
	default:
		_, err := ParseSortKey(string(key))
		return nil, err
	}

	students := s.FindAll()
	sort.SliceStable(students, func(i, j int) bool { return less(students[i], students[j]) })
	return students, nil
}

// Summary returns the number of students and their average percentage.
func (s *Store) Summary() (Summary, error) {
	return Summarize(s.students)
}

// Summarize returns the number of `students` and their average percentage.
func Summarize(students []Student) (Summary, error) {
	if len(students) == 0 {
		return Summary{}, ErrEmptyStore
	}
	var total float64
	for _, st := range students {
		total += st.Percentage()
	}
	return Summary{
		Count:             len(students),
		AveragePercentage: round2(total / float64(len(students))),
	}, nil
}

// Add validates `ns`, appends it to the Store and saves.
// If saving fails the student is kept in memory and the save error is returned.
func (s *Store) Add(ns NewStudent) (Student, error) {
	ns.Clean()
	if err := s.validate.Struct(ns); err != nil {
		return Student{}, core.FirstFieldError(err, s.translator)
	}
	for _, st := range s.students {
		if st.Code == ns.Code {
			return Student{}, core.NewValidationError(
				errors.New(codeExistsText),
				core.FieldError{Field: "code", Error: codeExistsText},
			)
		}
	}

	st := ns.Student()
	s.students = append(s.students, st)
	return st, s.Save()
}

// Update validates `uu` and replaces the student at position `i` with it, keeping its code, then saves.
// If saving fails the change is kept in memory and the save error is returned.
func (s *Store) Update(i int, uu UpdateStudent) (Student, error) {
	orig, err := s.FindByIndex(i)
	if err != nil {
		return Student{}, err
	}
	uu.Clean()
	if err := s.validate.Struct(uu); err != nil {
		return Student{}, core.FirstFieldError(err, s.translator)
	}

	st := uu.Apply(orig)
	s.students[i] = st
	return st, s.Save()
}

// Delete removes the student at position `i` and saves.
// If saving fails the student stays deleted in memory and the save error is returned.
func (s *Store) Delete(i int) (Student, error) {
	st, err := s.FindByIndex(i)
	if err != nil {
		return Student{}, err
	}
	s.students = append(s.students[:i], s.students[i+1:]...)
	return st, s.Save()
}
