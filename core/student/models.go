package student

import (
	"strconv"

	"github.com/trezcool/studentmarks/core"
)

// Marks limits
const (
	MinCode       = 1000
	MaxCode       = 9999
	MaxCoursework = 20
	MaxExam       = 100

	// 3 courseworks (60) + exam (100)
	MaxTotal = 3*MaxCoursework + MaxExam
)

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// GradeFor maps a percentage to its letter grade.
func GradeFor(pct float64) Grade {
	switch {
	case pct >= 70:
		return GradeA
	case pct >= 60:
		return GradeB
	case pct >= 50:
		return GradeC
	case pct >= 40:
		return GradeD
	default:
		return GradeF
	}
}

type Student struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Coursework1 int    `json:"coursework1"`
	Coursework2 int    `json:"coursework2"`
	Coursework3 int    `json:"coursework3"`
	Exam        int    `json:"exam"`
}

func (s Student) TotalCoursework() int {
	return s.Coursework1 + s.Coursework2 + s.Coursework3
}

// Percentage is the overall mark out of 100, rounded to 2 decimal places.
func (s Student) Percentage() float64 {
	return round2(float64(s.TotalCoursework()+s.Exam) / MaxTotal * 100)
}

// round2 rounds the exact value of f to 2 decimal places, ties to even.
func round2(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	if err != nil {
		return f
	}
	return r
}

func (s Student) Grade() Grade {
	return GradeFor(s.Percentage())
}

// Label is how a Student is listed in selection lists, e.g. "1234 - Alice".
func (s Student) Label() string {
	return strconv.Itoa(s.Code) + " - " + s.Name
}

// Result is a Student along with its derived marks.
type Result struct {
	Student
	TotalCoursework int     `json:"total_coursework"`
	Percentage      float64 `json:"percentage"`
	Grade           Grade   `json:"grade"`
}

func NewResult(s Student) Result {
	pct := s.Percentage()
	return Result{
		Student:         s,
		TotalCoursework: s.TotalCoursework(),
		Percentage:      pct,
		Grade:           GradeFor(pct),
	}
}

func NewResults(students []Student) []Result {
	results := make([]Result, 0, len(students))
	for _, s := range students {
		results = append(results, NewResult(s))
	}
	return results
}

// Summary describes a list of students.
type Summary struct {
	Count             int     `json:"count"`
	AveragePercentage float64 `json:"average_percentage"`
}

// NewStudent contains information needed to add a new Student.
type NewStudent struct {
	Code        int    `json:"code" validate:"studentcode"`
	Name        string `json:"name" validate:"notblank,nocomma,singleline"`
	Coursework1 int    `json:"coursework1" validate:"coursework"`
	Coursework2 int    `json:"coursework2" validate:"coursework"`
	Coursework3 int    `json:"coursework3" validate:"coursework"`
	Exam        int    `json:"exam" validate:"exammark"`
}

func (ns *NewStudent) Clean() {
	ns.Name = core.CleanString(ns.Name)
}

func (ns NewStudent) Student() Student {
	return Student{
		Code:        ns.Code,
		Name:        ns.Name,
		Coursework1: ns.Coursework1,
		Coursework2: ns.Coursework2,
		Coursework3: ns.Coursework3,
		Exam:        ns.Exam,
	}
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// The code of a Student cannot be changed.
type UpdateStudent struct {
	Name        string `json:"name" validate:"notblank,nocomma,singleline"`
	Coursework1 int    `json:"coursework1" validate:"coursework"`
	Coursework2 int    `json:"coursework2" validate:"coursework"`
	Coursework3 int    `json:"coursework3" validate:"coursework"`
	Exam        int    `json:"exam" validate:"exammark"`
}

func (uu *UpdateStudent) Clean() {
	uu.Name = core.CleanString(uu.Name)
}

// Apply returns `orig` with the updated fields; its code is kept.
func (uu UpdateStudent) Apply(orig Student) Student {
	return Student{
		Code:        orig.Code,
		Name:        uu.Name,
		Coursework1: uu.Coursework1,
		Coursework2: uu.Coursework2,
		Coursework3: uu.Coursework3,
		Exam:        uu.Exam,
	}
}
