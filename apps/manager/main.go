package main

import (
	"fmt"
	"os"
)

func main() {
	cli := newCommandLine(os.Stdout, os.Stdin)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		cli.close()
		os.Exit(1)
	}
	cli.close()
}
