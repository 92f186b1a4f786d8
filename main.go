package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"quotient/src/num/rational"
)

const buildVersion = "v0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "quotient"
	app.Usage = "exact rational arithmetic with a plane geometry companion"
	app.Version = buildVersion
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "walk the library surface with worked examples",
			Action: demoCmd,
		},
		{
			Name:      "calc",
			Usage:     "evaluate one exact operation on two rationals",
			ArgsUsage: "LHS OP RHS",
			Action:    calcCmd,
		},
		{
			Name:      "approx",
			Usage:     "best rational approximation of a float",
			ArgsUsage: "VALUE",
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:  "max-den",
					Usage: "largest denominator to consider",
					Value: rational.DefaultMaxDenominator,
				},
			},
			Action: approxCmd,
		},
		{
			Name:      "mixed",
			Usage:     "mixed-number decomposition of a rational",
			ArgsUsage: "RAT",
			Action:    mixedCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
