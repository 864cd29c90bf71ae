package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Fluxie/return-test/internal/harness"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
	"golang.org/x/perf/benchstat"
)

type cmpCmd struct{}

func prepareCmp() (cli.Command, error) {
	return &cmpCmd{}, nil
}

func (cmd *cmpCmd) Run(args []string) int {
	if len(args) < 2 {
		return cli.RunResultHelp
	}
	db, err := initDB()
	if err != nil {
		fmt.Printf("err initDB: %v", err)
		return 1
	}
	defer db.Close()
	err = cmd.cmp(db, args...)
	if err != nil {
		log.Fatal(err)
	}
	return 0
}

func (cmd *cmpCmd) cmp(db *bbolt.DB, names ...string) error {
	c := &benchstat.Collection{}
	for _, name := range names {
		r, err := harness.GetRun(db, name)
		if err != nil {
			return errors.Wrap(err, "GetRun")
		}
		if r == nil {
			fmt.Printf("run %s not found\n", name)
			continue
		}
		err = c.AddFile(r.Name, strings.NewReader(r.Bench))
		if err != nil {
			return errors.Wrap(err, "benchstat.Collection.AddFile")
		}
	}
	var buf bytes.Buffer
	benchstat.FormatText(&buf, c.Tables())
	_, err := os.Stdout.Write(buf.Bytes())
	return errors.Wrap(err, "os.Stdout.Write")
}

func (cmd *cmpCmd) Synopsis() string {
	return `compare two or more runs`
}

func (cmd *cmpCmd) Help() string {
	return `Usage: return-test cmp <name1> <name2> [name3] [...]

Compare two or more stored runs with benchstat`
}
