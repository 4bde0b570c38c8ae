package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/studentmarks/apps"
	"github.com/trezcool/studentmarks/apps/api/echo"
	"github.com/trezcool/studentmarks/apps/shared"
	"github.com/trezcool/studentmarks/core"
	"github.com/trezcool/studentmarks/core/student"
	"github.com/trezcool/studentmarks/tests"
)

const (
	aliceBlock = "Student Name: Alice\n" +
		"Student Number: 1001\n" +
		"Total Coursework: 57/60\n" +
		"Exam Mark: 85/100\n" +
		"Overall Percentage: 88.75%\n" +
		"Grade: A\n" +
		"--------------------------------------------------\n"
	bobBlock = "Student Name: Bob\n" +
		"Student Number: 1002\n" +
		"Total Coursework: 30/60\n" +
		"Exam Mark: 40/100\n" +
		"Overall Percentage: 43.75%\n" +
		"Grade: D\n" +
		"--------------------------------------------------\n"
	rule50  = "==================================================\n\n"
	summary = "\nSUMMARY:\nNumber of students: 2\nAverage percentage: 66.25%\n"
)

type cliTest struct {
	name       string
	args       []string // without program name
	input      string
	wantOut    string
	wantErr    error
	wantErrStr string
}

// setup returns a commandLine over a data file holding `content`, or over a missing file if `content` is empty.
func setup(t *testing.T, content string) (*commandLine, *bytes.Buffer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studentMarks.txt")
	if content != "" {
		path = testutil.WriteDataFile(t, content)
	}

	origNewApp := newAppFunc
	t.Cleanup(func() { newAppFunc = origNewApp })
	newAppFunc = func(workDir ...string) (*shared.App, error) {
		return shared.NewAppWithConfig(&core.Config{
			Env:      "TEST",
			TestMode: true,
			AppName:  "Student Marks",
			DataFile: path,
			Server:   core.ServerConfig{Address: ":8000", DisableReqLogs: true},
		})
	}

	var out bytes.Buffer
	cli := newCommandLine(&out, strings.NewReader(""))
	t.Cleanup(cli.close)
	return cli, &out, path
}

func runCliTests(t *testing.T, content string, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out, _ := setup(t, content)
			cli.in = strings.NewReader(tt.input)

			err := cli.run(append([]string{"manager"}, tt.args...))
			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr), "run() error = %v; wantErr %v", err, tt.wantErr)
			case tt.wantErrStr != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantErrStr, err.Error())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantOut, out.String())
			}
		})
	}
}

func Test_commandLine_reports(t *testing.T) {
	runCliTests(t, testutil.Fixture, []cliTest{
		{name: "no subcommand", args: nil, wantErr: errHelp},
		{name: "list", args: []string{"list"}, wantOut: "ALL STUDENT RECORDS\n" + rule50 + aliceBlock + bobBlock + summary},
		{name: "show by index", args: []string{"show", "1"}, wantOut: "INDIVIDUAL STUDENT RECORD\n" + rule50 + bobBlock},
		{name: "show by name", args: []string{"show", "--name", "alise"}, wantOut: "INDIVIDUAL STUDENT RECORD\n" + rule50 + aliceBlock},
		{name: "show unknown name", args: []string{"show", "--name", "Zebedee"}, wantErr: student.ErrNotFound},
		{name: "show out of range", args: []string{"show", "2"}, wantErr: student.ErrNotFound},
		{name: "show malformed index", args: []string{"show", "first"}, wantErrStr: "invalid index \"first\": see `manager choices`"},
		{name: "show nothing", args: []string{"show"}, wantErr: errHelp},
		{name: "highest", args: []string{"highest"}, wantOut: "STUDENT WITH HIGHEST MARK\n" + rule50 + aliceBlock},
		{name: "lowest", args: []string{"lowest"}, wantOut: "STUDENT WITH LOWEST MARK\n" + rule50 + bobBlock},
		{name: "sort default", args: []string{"sort"}, wantOut: "SORTED STUDENT RECORDS (PERCENTAGE)\n" + rule50 + aliceBlock + bobBlock + summary},
		{name: "sort by code", args: []string{"sort", "--by", "Code"}, wantOut: "SORTED STUDENT RECORDS (CODE)\n" + rule50 + aliceBlock + bobBlock + summary},
		{name: "sort by unknown", args: []string{"sort", "--by", "exam"}, wantErrStr: "cannot sort by \"exam\""},
		{name: "choices", args: []string{"choices"}, wantOut: "0: 1001 - Alice\n1: 1002 - Bob\n"},
		{name: "unknown command", args: []string{"lol"}, wantErrStr: "unknown command \"lol\" for \"manager\""},
	})
}

func Test_commandLine_reportsEmpty(t *testing.T) {
	runCliTests(t, "", []cliTest{
		{name: "list", args: []string{"list"}, wantOut: "No student records found.\n"},
		{name: "show", args: []string{"show", "0"}, wantErr: student.ErrEmptyStore},
		{name: "highest", args: []string{"highest"}, wantErr: student.ErrEmptyStore},
		{name: "lowest", args: []string{"lowest"}, wantErr: student.ErrEmptyStore},
		{name: "sort", args: []string{"sort", "--by", "name"}, wantErr: student.ErrEmptyStore},
		{name: "choices", args: []string{"choices"}, wantErr: student.ErrEmptyStore},
	})
}

func Test_commandLine_sortByName(t *testing.T) {
	cli, out, _ := setup(t, "3\n3000,Carol,20,20,20,100\n1002,Bob,10,10,10,40\n1001,Alice,18,19,20,85\n")

	require.NoError(t, cli.run([]string{"manager", "sort", "--by", "name"}))
	got := out.String()
	assert.True(t, strings.HasPrefix(got, "SORTED STUDENT RECORDS (NAME)\n"+rule50+aliceBlock+bobBlock+"Student Name: Carol\n"))
	assert.Contains(t, got, "Overall Percentage: 100.0%\n")
	assert.True(t, strings.HasSuffix(got, "\nSUMMARY:\nNumber of students: 3\nAverage percentage: 77.50%\n"))
}

func Test_commandLine_add(t *testing.T) {
	tests := []cliTest{
		{
			name:       "missing flags",
			args:       []string{"add", "--code", "2000"},
			wantErrStr: "required flag(s) \"cw1\", \"cw2\", \"cw3\", \"exam\", \"name\" not set",
		},
		{
			name:       "invalid code",
			args:       []string{"add", "--code", "999", "--name", "Carol", "--cw1", "1", "--cw2", "2", "--cw3", "3", "--exam", "4"},
			wantErrStr: "student code must be between 1000 and 9999",
		},
		{
			name:       "duplicate code",
			args:       []string{"add", "--code", "1001", "--name", "Carol", "--cw1", "1", "--cw2", "2", "--cw3", "3", "--exam", "4"},
			wantErrStr: "student code already exists",
		},
		{
			name:       "exam out of range",
			args:       []string{"add", "--code", "2000", "--name", "Carol", "--cw1", "1", "--cw2", "2", "--cw3", "3", "--exam", "400"},
			wantErrStr: "exam mark must be between 0 and 100",
		},
	}
	runCliTests(t, testutil.Fixture, tests)

	t.Run("valid", func(t *testing.T) {
		cli, out, path := setup(t, testutil.Fixture)

		err := cli.run([]string{"manager", "add", "--code", "2000", "--name", "Carol", "--cw1", "1", "--cw2", "2", "--cw3", "3", "--exam", "4"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "Student added successfully!\n\nStudent Name: Carol\n"))
		assert.Equal(t, "3\n1001,Alice,18,19,20,85\n1002,Bob,10,10,10,40\n2000,Carol,1,2,3,4\n", testutil.ReadDataFile(t, path))
	})
}

func Test_commandLine_update(t *testing.T) {
	runCliTests(t, testutil.Fixture, []cliTest{
		{name: "no index", args: []string{"update"}, wantErrStr: "accepts 1 arg(s), received 0"},
		{name: "out of range", args: []string{"update", "7", "--exam", "50"}, wantErr: student.ErrNotFound},
		{name: "coursework out of range", args: []string{"update", "1", "--cw3", "21"}, wantErrStr: "coursework marks must be between 0 and 20"},
		{name: "blank name", args: []string{"update", "1", "--name", " "}, wantErrStr: "name is required"},
	})

	t.Run("only given flags change", func(t *testing.T) {
		cli, _, path := setup(t, testutil.Fixture)

		require.NoError(t, cli.run([]string{"manager", "update", "1", "--exam", "50"}))
		assert.Equal(t, "2\n1001,Alice,18,19,20,85\n1002,Bob,10,10,10,50\n", testutil.ReadDataFile(t, path))
	})
}

func Test_commandLine_delete(t *testing.T) {
	origIsTerminal := isTerminalFunc
	t.Cleanup(func() { isTerminalFunc = origIsTerminal })

	tests := []struct {
		cliTest
		terminal bool
		wantFile string
	}{
		{
			cliTest:  cliTest{name: "yes flag", args: []string{"delete", "0", "--yes"}, wantOut: "Student deleted successfully!\n"},
			wantFile: "1\n1002,Bob,10,10,10,40\n",
		},
		{
			cliTest:  cliTest{name: "not a terminal", args: []string{"delete", "0"}},
			wantFile: testutil.Fixture,
		},
		{
			cliTest:  cliTest{name: "confirmed", args: []string{"delete", "1"}, input: "y\n", wantOut: "Delete Bob (1002)? [y/N]: Student deleted successfully!\n"},
			terminal: true,
			wantFile: "1\n1001,Alice,18,19,20,85\n",
		},
		{
			cliTest:  cliTest{name: "declined", args: []string{"delete", "1"}, input: "\n", wantOut: "Delete Bob (1002)? [y/N]: Nothing deleted.\n"},
			terminal: true,
			wantFile: testutil.Fixture,
		},
		{
			cliTest:  cliTest{name: "out of range", args: []string{"delete", "2", "-y"}, wantErr: student.ErrNotFound},
			wantFile: testutil.Fixture,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out, path := setup(t, testutil.Fixture)
			in := inputFile(t, tt.input)
			cli.in = in
			isTerminalFunc = func(fd int) bool { return tt.terminal && fd == int(in.Fd()) }

			err := cli.run(append([]string{"manager"}, tt.args...))
			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr), "run() error = %v; wantErr %v", err, tt.wantErr)
			case tt.wantOut == "":
				var argErr *apps.ArgumentError
				assert.True(t, errors.As(err, &argErr), "run() error = %v; want *apps.ArgumentError", err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantOut, out.String())
			}
			assert.Equal(t, tt.wantFile, testutil.ReadDataFile(t, path))
		})
	}
}

func Test_commandLine_deleteAsksOnInput(t *testing.T) {
	origIsTerminal := isTerminalFunc
	t.Cleanup(func() { isTerminalFunc = origIsTerminal })
	isTerminalFunc = func(fd int) bool { return true }

	// a reader that is not a file cannot be a terminal, whatever stdin is
	cli, _, path := setup(t, testutil.Fixture)
	cli.in = strings.NewReader("y\n")

	err := cli.run([]string{"manager", "delete", "0"})
	var argErr *apps.ArgumentError
	assert.True(t, errors.As(err, &argErr), "run() error = %v; want *apps.ArgumentError", err)
	assert.Equal(t, testutil.Fixture, testutil.ReadDataFile(t, path))
}

// inputFile returns an open file holding `content`, standing in for a terminal.
func inputFile(t *testing.T, content string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func Test_commandLine_serve(t *testing.T) {
	origRunServer := runServerFunc
	t.Cleanup(func() { runServerFunc = origRunServer })

	var got echoapi.ServerDeps
	runServerFunc = func(deps echoapi.ServerDeps) error {
		got = deps
		return nil
	}

	cli, _, _ := setup(t, testutil.Fixture)
	require.NoError(t, cli.run([]string{"manager", "serve", "--addr", ":9090"}))
	assert.Equal(t, ":9090", got.Conf.Server.Address)
	assert.Equal(t, 2, got.Store.Len())
	assert.NotNil(t, got.Logger)
	assert.NotNil(t, got.Translator)
}
