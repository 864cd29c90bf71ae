package main

import (
	"fmt"

	"github.com/Fluxie/return-test/internal/harness"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

type rmCmd struct{}

func prepareRm() (cli.Command, error) {
	return &rmCmd{}, nil
}

func (cmd *rmCmd) Run(args []string) int {
	if len(args) < 1 {
		return cli.RunResultHelp
	}
	db, err := initDB()
	if err != nil {
		fmt.Printf("err initDB: %v", err)
		return 1
	}
	defer db.Close()
	if args[0] == "--all" || args[0] == "-all" {
		err := cmd.rmAllRuns(db)
		if err != nil {
			fmt.Printf("err rmAllRuns: %v", err)
			return 1
		}
		return 0
	}
	err = cmd.rmRuns(db, args...)
	if err != nil {
		fmt.Printf("err rmRuns: %v", err)
		return 1
	}
	return 0
}

func (cmd *rmCmd) rmAllRuns(db *bbolt.DB) error {
	err := harness.DeleteAllRuns(db)
	if errors.Is(err, bbolt.ErrBucketNotFound) {
		err = nil
	}
	return errors.Wrap(err, "DeleteAllRuns")
}

func (cmd *rmCmd) rmRuns(db *bbolt.DB, names ...string) error {
	deleted, err := harness.DeleteRuns(db, names...)
	if err != nil {
		return errors.Wrap(err, "DeleteRuns")
	}
	for _, name := range diffStrSl(names, deleted) {
		fmt.Printf("run %s not found\n", name)
	}
	return nil
}

func diffStrSl(a, b []string) []string {
	mb := make(map[string]struct{}, len(b))
	for _, x := range b {
		mb[x] = struct{}{}
	}
	var diff []string
	for _, x := range a {
		if _, found := mb[x]; !found {
			diff = append(diff, x)
		}
	}
	return diff
}

func (cmd *rmCmd) Synopsis() string {
	return `remove stored run(s)`
}

func (cmd *rmCmd) Help() string {
	return `Usage: return-test rm [--all] <name1> [name2] [...]

Remove the specified run(s). If [--all] is given, delete all stored runs
`
}
