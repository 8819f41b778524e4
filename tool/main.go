package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/trainlog-io/trainlog"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./tool <command> <flags>

var (
	backendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: "storage backend: memory, sqlite, mongo or leveldb",
		Value: "sqlite",
	}
	pathFlag = cli.StringFlag{
		Name:  "path",
		Usage: "database file or directory of the file backends",
	}
	databaseFlag = cli.StringFlag{
		Name:  "database",
		Usage: "database name of the document store",
		Value: "trainlog",
	}
	hostFlag = cli.StringFlag{
		Name:  "host",
		Usage: "host of the document store",
	}
	portFlag = cli.IntFlag{
		Name:  "port",
		Usage: "port of the document store",
	}
	runFlag = cli.StringFlag{
		Name:     "run",
		Usage:    "hex identity of the experiment to inspect",
		Required: true,
	}
	stepFlag = cli.IntFlag{
		Name:  "step",
		Usage: "restrict the dump to a single step",
		Value: -1,
	}
)

func main() {
	app := &cli.App{
		Name:  "trainlog-tool",
		Usage: "training log inspection toolbox",
		Flags: []cli.Flag{
			&backendFlag,
			&pathFlag,
			&databaseFlag,
			&hostFlag,
			&portFlag,
			&runFlag,
		},
		Commands: []*cli.Command{
			{
				Name:   "steps",
				Usage:  "list all recorded steps",
				Action: listSteps,
			},
			{
				Name:   "dump",
				Usage:  "print recorded entries as JSON lines",
				Flags:  []cli.Flag{&stepFlag},
				Action: dumpEntries,
			},
			{
				Name:   "status",
				Usage:  "print the status record",
				Action: printStatus,
			},
			{
				Name:   "info",
				Usage:  "print the info record",
				Action: printInfo,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openLog(ctx *cli.Context) (*trainlog.Log, error) {
	return trainlog.New(trainlog.Parameters{
		Backend:  trainlog.BackendType(ctx.String(backendFlag.Name)),
		Path:     ctx.String(pathFlag.Name),
		Database: ctx.String(databaseFlag.Name),
		Host:     ctx.String(hostFlag.Name),
		Port:     ctx.Int(portFlag.Name),
		Run:      ctx.String(runFlag.Name),
	})
}

func listSteps(ctx *cli.Context) error {
	trainLog, err := openLog(ctx)
	if err != nil {
		return err
	}
	defer trainLog.Close()
	steps, err := trainLog.Steps()
	if err != nil {
		return err
	}
	for _, step := range steps {
		fmt.Println(step)
	}
	return nil
}

func dumpEntries(ctx *cli.Context) error {
	trainLog, err := openLog(ctx)
	if err != nil {
		return err
	}
	defer trainLog.Close()

	var steps []uint64
	if step := ctx.Int(stepFlag.Name); step >= 0 {
		steps = []uint64{uint64(step)}
	} else if steps, err = trainLog.Steps(); err != nil {
		return err
	}
	for _, step := range steps {
		entry, err := trainLog.Entry(int(step))
		if err != nil {
			return err
		}
		fields, err := entry.Snapshot()
		if err != nil {
			return err
		}
		line, err := json.Marshal(map[string]any{"step": step, "fields": fields})
		if err != nil {
			return err
		}
		fmt.Println(string(line))
	}
	return nil
}

func printStatus(ctx *cli.Context) error {
	trainLog, err := openLog(ctx)
	if err != nil {
		return err
	}
	defer trainLog.Close()
	for _, name := range trainLog.Status.Names() {
		value, err := trainLog.Status.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %v\n", name, value)
	}
	return nil
}

func printInfo(ctx *cli.Context) error {
	trainLog, err := openLog(ctx)
	if err != nil {
		return err
	}
	defer trainLog.Close()
	info := trainLog.Info()
	fields, err := info.Fields()
	if err != nil {
		return err
	}
	for _, field := range fields {
		value, err := info.Get(field)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %v\n", field, value)
	}
	return nil
}
