package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trezcool/studentmarks/core/student"
)

func (cli *commandLine) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all student records with a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			students := cli.store().FindAll()
			if len(students) == 0 {
				cli.printf("No student records found.\n")
				return nil
			}
			return cli.printStudents("ALL STUDENT RECORDS", students)
		},
	}
}

func (cli *commandLine) showCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "show [INDEX]",
		Short: "Show one student record, by index or by name",
		Long: `Show one student record.

INDEX is the position listed by "manager choices". With --name, the student
whose name matches best is shown instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.store().Len() == 0 {
				return student.ErrEmptyStore
			}

			var st student.Student
			var err error
			switch {
			case name != "":
				_, st, err = cli.store().Search(name)
			case len(args) == 1:
				var i int
				if i, err = parseIndex(args[0]); err != nil {
					return err
				}
				st, err = cli.store().FindByIndex(i)
			default:
				_ = cmd.Usage()
				return errHelp
			}
			if err != nil {
				return err
			}

			cli.printHeader("INDIVIDUAL STUDENT RECORD")
			cli.printStudent(st)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "the student's name; the closest match is shown")
	return cmd
}

func (cli *commandLine) extremalCmd(dir student.Direction) *cobra.Command {
	use, title := "highest", "STUDENT WITH HIGHEST MARK"
	if dir == student.Min {
		use, title = "lowest", "STUDENT WITH LOWEST MARK"
	}
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Show the student with the %s overall percentage", use),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := cli.store().Extremal(student.PercentageMetric, dir)
			if err != nil {
				return err
			}
			cli.printHeader(title)
			cli.printStudent(st)
			return nil
		},
	}
}

func (cli *commandLine) sortCmd() *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Show all student records sorted by percentage (descending), name or code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := student.ParseSortKey(by)
			if err != nil {
				return err
			}
			if cli.store().Len() == 0 {
				return student.ErrEmptyStore
			}
			students, err := cli.store().SortedBy(key)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("SORTED STUDENT RECORDS (%s)", strings.ToUpper(string(key)))
			return cli.printStudents(title, students)
		},
	}
	cmd.Flags().StringVar(&by, "by", string(student.SortByPercentage), "percentage, name or code")
	return cmd
}

func (cli *commandLine) choicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choices",
		Short: "List the students along with the index to select them by",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := cli.store().Choices()
			if len(labels) == 0 {
				return student.ErrEmptyStore
			}
			for i, label := range labels {
				cli.printf("%d: %s\n", i, label)
			}
			return nil
		},
	}
}
