// Package flatfile stores students in a plain text file:
//
//	<n>
//	<code>,<name>,<coursework1>,<coursework2>,<coursework3>,<exam>
//	... (n lines)
//
// Names cannot contain commas; there is no escaping.
package flatfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/studentmarks/core"
	"github.com/trezcool/studentmarks/core/student"
)

const numFields = 6

// Decode reads students from `r`.
//
// Only the n lines following the count header are read. A line with fewer than 6 fields is skipped
// and extra fields are ignored, but a malformed count or numeric field fails the whole decoding.
// Missing lines are not an error. Field ranges and code uniqueness are not checked.
func Decode(r io.Reader) ([]student.Student, error) {
	br := bufio.NewReader(r)
	header, ok, err := readLine(br)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, core.NewParseError(1, errors.New("missing record count"))
	}
	n, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil {
		return nil, core.NewParseError(1, errors.Wrap(err, "record count"))
	}
	if n < 0 {
		return nil, core.NewParseError(1, errors.Errorf("negative record count %d", n))
	}

	students := make([]student.Student, 0)
	for line := 2; line < n+2; line++ {
		text, ok, err := readLine(br)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		fields := strings.Split(strings.TrimSpace(text), ",")
		if len(fields) < numFields {
			continue
		}
		st, err := decodeStudent(fields)
		if err != nil {
			return nil, core.NewParseError(line, err)
		}
		students = append(students, st)
	}
	return students, nil
}

// readLine returns the next line of `br` whatever its length, with its line ending.
// ok is false at the end of input.
func readLine(br *bufio.Reader) (line string, ok bool, err error) {
	line, err = br.ReadString('\n')
	if err == io.EOF {
		return line, line != "", nil
	}
	if err != nil {
		return "", false, err
	}
	return line, true, nil
}

func decodeStudent(fields []string) (student.Student, error) {
	var (
		st  = student.Student{Name: fields[1]}
		err error
	)
	ints := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"code", fields[0], &st.Code},
		{"coursework1", fields[2], &st.Coursework1},
		{"coursework2", fields[3], &st.Coursework2},
		{"coursework3", fields[4], &st.Coursework3},
		{"exam", fields[5], &st.Exam},
	}
	for _, fld := range ints {
		if *fld.dst, err = strconv.Atoi(strings.TrimSpace(fld.raw)); err != nil {
			return student.Student{}, errors.Wrap(err, fld.name)
		}
	}
	return st, nil
}

// Encode writes `students` to `w` in the order given.
func Encode(w io.Writer, students []student.Student) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strconv.Itoa(len(students)) + "\n"); err != nil {
		return err
	}
	for _, st := range students {
		line := strings.Join([]string{
			strconv.Itoa(st.Code),
			st.Name,
			strconv.Itoa(st.Coursework1),
			strconv.Itoa(st.Coursework2),
			strconv.Itoa(st.Coursework3),
			strconv.Itoa(st.Exam),
		}, ",")
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
