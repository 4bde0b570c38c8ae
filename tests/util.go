package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/studentmarks/core"
	"github.com/trezcool/studentmarks/core/student"
	"github.com/trezcool/studentmarks/storage/database"
	"github.com/trezcool/studentmarks/storage/database/dummy"
)

// Fixture is the data file content used across tests.
const Fixture = "2\n1001,Alice,18,19,20,85\n1002,Bob,10,10,10,40\n"

var (
	Alice = student.Student{Code: 1001, Name: "Alice", Coursework1: 18, Coursework2: 19, Coursework3: 20, Exam: 85}
	Bob   = student.Student{Code: 1002, Name: "Bob", Coursework1: 10, Coursework2: 10, Coursework3: 10, Exam: 40}
)

// NewDummyStore returns a loaded student.Store over an in-memory DB holding `rows`.
func NewDummyStore(t *testing.T, rows ...student.Student) (*student.Store, *dummydb.DB) {
	t.Helper()
	db, err := dummydb.Open(rows...)
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	validate, translator := student.NewValidator()
	store, err := student.Open(dummydb.NewStudentRepository(db), validate, translator)
	if err != nil {
		t.Fatalf("student.Open() failed: %v", err)
	}
	return store, db
}

// WriteDataFile writes `content` to a new file in a temporary directory and returns its path.
func WriteDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studentMarks.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteDataFile() failed: %v", err)
	}
	return path
}

// ReadDataFile returns the content of the file at `path`.
func ReadDataFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadDataFile() failed: %v", err)
	}
	return string(data)
}

// OpenDB connects to the test database and empties the student table.
// The test is skipped unless TEST_DATABASE_NAME is set (see core.NewConfig).
func OpenDB(t *testing.T) *sqlx.DB {
	t.Helper()
	t.Setenv("ENV", "TEST")
	conf, err := core.NewConfig()
	if err != nil {
		t.Fatalf("core.NewConfig() failed: %v", err)
	}
	if !conf.Database.Enabled() {
		t.Skip("TEST_DATABASE_NAME not set")
	}
	db, err := database.Open(conf.Database)
	if err != nil {
		t.Fatalf("database.Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	ResetDB(t, db)
	return db
}

// ResetDB deletes every student row.
func ResetDB(t *testing.T, db *sqlx.DB) {
	t.Helper()
	if _, err := db.Exec("DELETE FROM student"); err != nil {
		t.Fatalf("ResetDB() failed: %v", err)
	}
}
