package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trezcool/studentmarks/apps"
	"github.com/trezcool/studentmarks/apps/shared"
	"github.com/trezcool/studentmarks/core/student"
)

var (
	newAppFunc     = shared.NewApp   // mockable
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")

	rule = strings.Repeat("=", 50)
	sep  = strings.Repeat("-", 50)
)

type commandLine struct {
	out     io.Writer
	in      io.Reader
	workDir string
	app     *shared.App
}

func newCommandLine(out io.Writer, in io.Reader) *commandLine {
	return &commandLine{out: out, in: in}
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "manager",
		Short:         "Manage the student marks records",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.open()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errHelp
		},
	}
	root.SetOut(cli.out)
	root.PersistentFlags().StringVar(&cli.workDir, "workdir", "", "directory holding config/.env.<env>")

	root.AddCommand(
		cli.listCmd(),
		cli.showCmd(),
		cli.extremalCmd(student.Max),
		cli.extremalCmd(student.Min),
		cli.sortCmd(),
		cli.choicesCmd(),
		cli.addCmd(),
		cli.updateCmd(),
		cli.deleteCmd(),
		cli.serveCmd(),
	)
	return root
}

// run executes the command named by args[1:]. args[0] is the program name.
func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	return root.Execute()
}

func (cli *commandLine) open() error {
	if cli.app != nil {
		return nil
	}
	app, err := newAppFunc(cli.workDir)
	if err != nil {
		return err
	}
	cli.app = app
	return nil
}

func (cli *commandLine) close() {
	if cli.app != nil {
		cli.app.Close()
	}
}

func (cli *commandLine) store() *student.Store { return cli.app.Store }

func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, apps.NewArgumentError(fmt.Sprintf("invalid index %q: see `manager choices`", arg))
	}
	return i, nil
}

// Output

func (cli *commandLine) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cli.out, format, args...)
}

func (cli *commandLine) printHeader(title string) {
	cli.printf("%s\n%s\n\n", title, rule)
}

func (cli *commandLine) printStudent(st student.Student) {
	res := student.NewResult(st)
	cli.printf("Student Name: %s\n", res.Name)
	cli.printf("Student Number: %d\n", res.Code)
	cli.printf("Total Coursework: %d/60\n", res.TotalCoursework)
	cli.printf("Exam Mark: %d/100\n", res.Exam)
	cli.printf("Overall Percentage: %s%%\n", formatPercentage(res.Percentage))
	cli.printf("Grade: %s\n", res.Grade)
	cli.printf("%s\n", sep)
}

func (cli *commandLine) printStudents(title string, students []student.Student) error {
	summary, err := student.Summarize(students)
	if err != nil {
		return err
	}
	cli.printHeader(title)
	for _, st := range students {
		cli.printStudent(st)
	}
	cli.printf("\nSUMMARY:\n")
	cli.printf("Number of students: %d\n", summary.Count)
	cli.printf("Average percentage: %.2f%%\n", summary.AveragePercentage)
	return nil
}

// formatPercentage writes whole percentages with one decimal, e.g. 100.0.
func formatPercentage(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
