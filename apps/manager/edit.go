package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trezcool/studentmarks/apps"
	"github.com/trezcool/studentmarks/core/student"
)

type marksFlags struct {
	name        string
	coursework1 int
	coursework2 int
	coursework3 int
	exam        int
}

func (f *marksFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "the student's name")
	cmd.Flags().IntVar(&f.coursework1, "cw1", 0, "coursework 1 mark (0-20)")
	cmd.Flags().IntVar(&f.coursework2, "cw2", 0, "coursework 2 mark (0-20)")
	cmd.Flags().IntVar(&f.coursework3, "cw3", 0, "coursework 3 mark (0-20)")
	cmd.Flags().IntVar(&f.exam, "exam", 0, "exam mark (0-100)")
}

func (cli *commandLine) addCmd() *cobra.Command {
	var code int
	var marks marksFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := cli.store().Add(student.NewStudent{
				Code:        code,
				Name:        marks.name,
				Coursework1: marks.coursework1,
				Coursework2: marks.coursework2,
				Coursework3: marks.coursework3,
				Exam:        marks.exam,
			})
			if err != nil {
				return err
			}
			cli.printf("Student added successfully!\n\n")
			cli.printStudent(st)
			return nil
		},
	}
	cmd.Flags().IntVar(&code, "code", 0, "the student's number (1000-9999)")
	marks.register(cmd)
	for _, fl := range []string{"code", "name", "cw1", "cw2", "cw3", "exam"} {
		_ = cmd.MarkFlagRequired(fl)
	}
	return cmd
}

func (cli *commandLine) updateCmd() *cobra.Command {
	var marks marksFlags
	cmd := &cobra.Command{
		Use:   "update INDEX",
		Short: "Update a student record; flags left out keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			orig, err := cli.store().FindByIndex(i)
			if err != nil {
				return err
			}

			data := student.UpdateStudent{
				Name:        orig.Name,
				Coursework1: orig.Coursework1,
				Coursework2: orig.Coursework2,
				Coursework3: orig.Coursework3,
				Exam:        orig.Exam,
			}
			fls := cmd.Flags()
			if fls.Changed("name") {
				data.Name = marks.name
			}
			if fls.Changed("cw1") {
				data.Coursework1 = marks.coursework1
			}
			if fls.Changed("cw2") {
				data.Coursework2 = marks.coursework2
			}
			if fls.Changed("cw3") {
				data.Coursework3 = marks.coursework3
			}
			if fls.Changed("exam") {
				data.Exam = marks.exam
			}

			st, err := cli.store().Update(i, data)
			if err != nil {
				return err
			}
			cli.printf("Student updated successfully!\n\n")
			cli.printStudent(st)
			return nil
		},
	}
	marks.register(cmd)
	return cmd
}

func (cli *commandLine) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete a student record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			st, err := cli.store().FindByIndex(i)
			if err != nil {
				return err
			}

			if !yes {
				if !cli.inIsTerminal() {
					return apps.NewArgumentError("cannot ask for confirmation: pass --yes to delete")
				}
				if !cli.confirm(fmt.Sprintf("Delete %s (%d)?", st.Name, st.Code)) {
					cli.printf("Nothing deleted.\n")
					return nil
				}
			}

			if _, err = cli.store().Delete(i); err != nil {
				return err
			}
			cli.printf("Student deleted successfully!\n")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}

func (cli *commandLine) confirm(question string) bool {
	cli.printf("%s [y/N]: ", question)
	answer, _ := bufio.NewReader(cli.in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// inIsTerminal reports whether confirmations can be asked on cli.in.
func (cli *commandLine) inIsTerminal() bool {
	f, ok := cli.in.(*os.File)
	return ok && isTerminalFunc(int(f.Fd()))
}
