package dummydb

import (
	"sync"

	"github.com/trezcool/studentmarks/core/student"
)

type (
	DB struct {
		student *studentTable
	}

	studentTable struct {
		sync.RWMutex
		rows    []student.Student
		saveErr error
		saves   int
	}
)

func Open(rows ...student.Student) (*DB, error) {
	db := &DB{
		student: &studentTable{rows: rows},
	}
	return db, nil
}

// FailSaves makes every following save return `err`; nil restores saving.
func (db *DB) FailSaves(err error) {
	db.student.Lock()
	defer db.student.Unlock()
	db.student.saveErr = err
}

// Saves returns the number of successful saves.
func (db *DB) Saves() int {
	db.student.RLock()
	defer db.student.RUnlock()
	return db.student.saves
}

// Rows returns a copy of the saved students.
func (db *DB) Rows() []student.Student {
	db.student.RLock()
	defer db.student.RUnlock()
	rows := make([]student.Student, len(db.student.rows))
	copy(rows, db.student.rows)
	return rows
}
