// Command nucleon evaluates the nucleon formulas from the command line.
//
//	nucleon binding 56 26 --terms
//	nucleon fission 236 -o json
//	nucleon fusion 2 3
//	nucleon decay 80 10 10
//	nucleon batch runs.yaml
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/katalvlaran/nucleon"
	"github.com/katalvlaran/nucleon/internal/cli"
	"github.com/katalvlaran/nucleon/internal/logging"
)

var version = "dev" // set by the linker

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd(version).ExecuteContext(ctx); err != nil {
		if errors.Is(err, nucleon.ErrDomain) {
			logging.Errorf("invalid input: %v", err)
		} else {
			logging.Errorf("%v", err)
		}
		stop()
		os.Exit(1)
	}
}
