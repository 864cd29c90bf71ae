package main

import (
	"log"
	"os"

	"github.com/Fluxie/return-test/internal/harness"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

func main() {
	c := cli.NewCLI("return-test", "1.0.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"run": prepareRun,
		"get": prepareGet,
		"cmp": prepareCmp,
		"rm":  prepareRm,
	}

	exitStatus, err := c.Run()
	if err != nil {
		log.Println(err)
	}

	os.Exit(exitStatus)
}

func initDB() (*bbolt.DB, error) {
	err := os.MkdirAll(harness.HostRootPath, os.ModePerm)
	if err != nil {
		return nil, errors.Wrap(err, "MkdirAll")
	}
	return bbolt.Open(harness.DBFilename, 0600, bbolt.DefaultOptions)
}
