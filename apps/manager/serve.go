package main

import (
	"github.com/spf13/cobra"

	"github.com/trezcool/studentmarks/apps/api/echo"
)

var runServerFunc = echoapi.Run // mockable

func (cli *commandLine) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the student records over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := cli.app.Conf
			if addr != "" {
				conf.Server.Address = addr
			}
			return runServerFunc(echoapi.ServerDeps{
				Conf:       conf,
				Logger:     cli.app.Logger,
				Store:      cli.app.Store,
				Translator: cli.app.Translator,
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (default from config)")
	return cmd
}
