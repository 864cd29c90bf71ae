package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Fluxie/return-test/internal/bench"
	"github.com/Fluxie/return-test/internal/harness"
	"github.com/docker/docker/pkg/namesgenerator"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
)

type runCmd struct{}

func prepareRun() (cli.Command, error) {
	return &runCmd{}, nil
}

func (cmd *runCmd) Run(args []string) int {
	args, name := popNameFlag(args)
	if name == "" {
		name = namesgenerator.GetRandomName(0)
		fmt.Printf("run name not given, using `%s`. To give a run name use the `-name` flag\n", name)
	}

	var opts bench.SweepOptions
	var err error
	args, opts.Batch.SampleCount, err = popIntFlag(args, "samples")
	if err != nil {
		fmt.Printf("err %v\n", err)
		return 1
	}
	args, opts.Batch.BatchSize, err = popIntFlag(args, "batch")
	if err != nil {
		fmt.Printf("err %v\n", err)
		return 1
	}
	if len(args) != 0 {
		return cli.RunResultHelp
	}

	rep, err := bench.Sweep(os.Stdout, opts)
	if err != nil {
		fmt.Printf("err %v", errors.Wrap(err, "Sweep"))
		return 1
	}
	err = cmd.save(name, rep)
	if err != nil {
		fmt.Printf("err %v", errors.Wrap(err, "save"))
		return 1
	}
	return 0
}

func (cmd *runCmd) save(name string, rep *bench.Report) error {
	db, err := initDB()
	if err != nil {
		return errors.Wrap(err, "initDB")
	}
	defer db.Close()
	r := &harness.Run{
		Name:      name,
		Report:    strings.Join(rep.Lines, "\n"),
		Bench:     strings.Join(rep.Bench, "\n"),
		CreatedAt: time.Now(),
	}
	return errors.Wrap(r.Save(db), "Run.Save")
}

func popFlagWithVal(args []string, flagName string) ([]string, string) {
	pivot := -2
	singleFlagName := fmt.Sprintf("-%s", flagName)
	doubleFlagName := fmt.Sprintf("-%s", singleFlagName)
	for i, arg := range args {
		if arg == singleFlagName || arg == doubleFlagName {
			pivot = i
		}
		if i == pivot+1 {
			return append(args[:i-1], args[i+1:]...), arg
		}
		if strings.HasPrefix(arg, fmt.Sprintf("%s=", doubleFlagName)) {
			return append(args[:i], args[i+1:]...), arg[len(flagName)+3:]
		}
		if strings.HasPrefix(arg, fmt.Sprintf("%s=", singleFlagName)) {
			return append(args[:i], args[i+1:]...), arg[len(flagName)+2:]
		}
	}

	return args, ""
}

func popNameFlag(args []string) ([]string, string) {
	return popFlagWithVal(args, "name")
}

// popIntFlag pops a flag that takes a positive integer. A missing flag
// yields 0, which the measurement loop maps to its default.
func popIntFlag(args []string, flagName string) ([]string, int, error) {
	args, val := popFlagWithVal(args, flagName)
	if val == "" {
		return args, 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return args, 0, errors.Errorf("invalid -%s value `%s`", flagName, val)
	}
	return args, n, nil
}

func (cmd *runCmd) Synopsis() string {
	return `run the transform sweep and store the report`
}

func (cmd *runCmd) Help() string {
	return `Usage: return-test run [-name <name>] [-samples <n>] [-batch <n>]

Measure the byte-buffer transform across every input size and buffer
configuration, print one report line per configuration, and store the run
under <name> for later use with "get", "cmp" and "rm".

-samples sets how many timed batches feed each median (default 1000);
-batch sets how many transforms run per timed batch (default 10000)
`
}
