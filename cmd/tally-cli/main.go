package main

import (
	"fmt"
	"os"

	"noticeboard-tally/cmd/tally-cli/commands"
	"noticeboard-tally/lib/serviceutil"
)

func main() {
	err := commands.ExecuteContext(serviceutil.SignalContext())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
