package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent_Percentage(t *testing.T) {
	tests := []struct {
		name string
		st   Student
		want float64
	}{
		{name: "zero", st: Student{}, want: 0},
		{name: "full marks", st: Student{Coursework1: 20, Coursework2: 20, Coursework3: 20, Exam: 100}, want: 100},
		{name: "Alice", st: Student{Coursework1: 18, Coursework2: 19, Coursework3: 20, Exam: 85}, want: 88.75},
		{name: "Bob", st: Student{Coursework1: 10, Coursework2: 10, Coursework3: 10, Exam: 40}, want: 43.75},
		{name: "rounded down on tie", st: Student{Exam: 1}, want: 0.62},
		{name: "rounded up", st: Student{Exam: 3}, want: 1.88},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.st.Percentage())
		})
	}
}

func TestStudent_PercentageInRange(t *testing.T) {
	for total := 0; total <= MaxTotal; total++ {
		exam := total
		if exam > MaxExam {
			exam = MaxExam
		}
		rest := total - exam
		st := Student{Exam: exam, Coursework1: min(rest, 20), Coursework2: min(max(rest-20, 0), 20), Coursework3: max(rest-40, 0)}
		pct := st.Percentage()
		assert.GreaterOrEqual(t, pct, 0.0)
		assert.LessOrEqual(t, pct, 100.0)
		assert.Equal(t, pct, st.Percentage(), "percentage must be deterministic")
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want Grade
	}{
		{100, GradeA},
		{70, GradeA},
		{69.99, GradeB},
		{60, GradeB},
		{59.99, GradeC},
		{50, GradeC},
		{49.99, GradeD},
		{40, GradeD},
		{39.99, GradeF},
		{0, GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.pct), "GradeFor(%v)", tt.pct)
	}
}

func TestStudent_Label(t *testing.T) {
	assert.Equal(t, "1234 - Alice", Student{Code: 1234, Name: "Alice"}.Label())
}

func TestUpdateStudent_Apply(t *testing.T) {
	orig := Student{Code: 1001, Name: "Alice", Coursework1: 1, Coursework2: 2, Coursework3: 3, Exam: 4}
	got := UpdateStudent{Name: "Alicia", Coursework1: 5, Coursework2: 6, Coursework3: 7, Exam: 8}.Apply(orig)
	assert.Equal(t, Student{Code: 1001, Name: "Alicia", Coursework1: 5, Coursework2: 6, Coursework3: 7, Exam: 8}, got)
}
