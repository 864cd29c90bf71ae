package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Fluxie/return-test/internal/harness"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

type getCmd struct{}

func prepareGet() (cli.Command, error) {
	return &getCmd{}, nil
}

func (cmd *getCmd) Run(args []string) int {
	db, err := initDB()
	if err != nil {
		fmt.Printf("err initDB: %v", err)
		return 1
	}
	defer db.Close()
	switch len(args) {
	case 0:
		err = errors.Wrap(cmd.printListRuns(db), "printListRuns")
	case 1:
		err = errors.Wrap(cmd.printRunDetail(db, args[0]), "printRunDetail")
	default:
		return cli.RunResultHelp
	}
	if err != nil {
		fmt.Printf("err %v", err)
		return 1
	}
	return 0
}

func (cmd *getCmd) printRunDetail(db *bbolt.DB, name string) error {
	r, err := harness.GetRun(db, name)
	if err != nil {
		return errors.Wrap(err, "GetRun")
	}
	if r == nil {
		fmt.Printf("run %s not found\n", name)
		return nil
	}
	fmt.Printf("name: %s\ncreated: %s\nreport:\n%s\n", r.Name, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Report)
	return nil
}

func (cmd *getCmd) printListRuns(db *bbolt.DB) error {
	runs, err := harness.ListRuns(db)
	if err != nil {
		return errors.Wrap(err, "ListRuns")
	}
	w := tabwriter.NewWriter(os.Stdout, 3, 3, 3, ' ', 0)
	fmt.Fprintln(w, "name\tcreated\tconfigurations\t")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t\n", r.Name, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Configurations())
	}
	w.Flush()

	return nil
}

func (cmd *getCmd) Synopsis() string {
	return `get a run's report or print the runs list`
}

func (cmd *getCmd) Help() string {
	return `Usage: return-test get [name]

Print the report for the given run. In case no name is given, list all stored runs`
}
