package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/coeval"
	"github.com/fatih/color"
	"github.com/urfave/cli"
)

// Exit codes. Parse errors and infeasible solutions are distinguishable for
// scripted graders.
const (
	exitIO         = 1
	exitFormat     = 2
	exitInfeasible = 3
)

func main() {
	app := cli.NewApp()
	app.Name = "evaluator"
	app.Usage = "check a candidate solution against a problem instance and score it"
	app.ArgsUsage = "INSTANCE SOLUTION"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "kind",
			Value: coeval.TSP,
			Usage: fmt.Sprintf("problem kind, one of %v", coeval.Kinds()),
		},
		cli.StringFlag{
			Name:  "report",
			Usage: "write the full report as JSON to `FILE`",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.NewExitError("usage: evaluator [-kind KIND] INSTANCE SOLUTION", exitFormat)
	}
	rep := coeval.EvaluateFiles(c.String("kind"), c.Args().Get(0), c.Args().Get(1))

	if out := c.String("report"); out != "" {
		if err := coeval.WriteReport(rep, out); err != nil {
			log.Printf("At %s: %s\n", out, err.Error())
		}
	}

	msg := strings.Join(rep.Messages, "; ")
	switch rep.Status {
	case coeval.StatusOK:
		color.Green("Objective value: %g", rep.Objective)
		return nil
	case coeval.StatusIOError:
		return cli.NewExitError(color.RedString("IO error: %s", msg), exitIO)
	case coeval.StatusFormat:
		return cli.NewExitError(color.RedString("Parse error: %s", msg), exitFormat)
	default:
		return cli.NewExitError(color.RedString("Infeasible solution: %s", msg), exitInfeasible)
	}
}
