package main

import (
	"fmt"
	"log"
	"os"

	"github.com/trezcool/studentmarks/apps/api/echo"
	"github.com/trezcool/studentmarks/apps/shared"
)

func main() {
	app, err := shared.NewApp()
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	err = echoapi.Run(echoapi.ServerDeps{
		Conf:       app.Conf,
		Logger:     app.Logger,
		Store:      app.Store,
		Translator: app.Translator,
	})
	if err != nil {
		app.Logger.Error(fmt.Sprintf("%v", err), err)
		app.Close()
		os.Exit(1)
	}
}
