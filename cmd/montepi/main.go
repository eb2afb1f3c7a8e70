// Command montepi estimates π by sampling the n-dimensional cube [-1,1]ⁿ and
// counting the draws that land inside the unit n-ball.
//
// Usage:
//
//	montepi [-n samples] [-d dimension] [-seed s] [-format table|json]
//	        [-trajectory file.jsonl] [-db runs.db] [-study-runs k]
//
// Every flag can also be set through a MONTEPI_* environment variable;
// flags win over the environment.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/montepi/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
