package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/musketyr/versioning"
)

// Version will be set by build process
var Version = "dev"

type CLI struct {
	Repo        string   `short:"r" help:"Repository path (default: current directory)"`
	SCM         string   `short:"s" default:"git" enum:"git,svn" help:"Source control backend"`
	Releases    []string `default:"release" help:"Branch types treated as release branches"`
	DisplayMode string   `default:"full" help:"Display mode for non-release branches (full, snapshot, base)"`
	Snapshot    string   `default:"-SNAPSHOT" help:"Suffix used by the snapshot display mode"`
	Field       string   `short:"f" default:"display" enum:"display,full,base,branch,branchType,branchId,commit,build,scm" help:"Field to print"`
	JSON        bool     `short:"j" help:"Output the whole version record as JSON"`
	ShowVersion bool     `help:"Show version information" name:"version"`
}

func main() {
	var cli CLI

	kong.Parse(&cli,
		kong.Name("versioning"),
		kong.Description("Derive a normalized version identifier from source control branch metadata"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)

	err := cli.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c *CLI) Run() error {
	if c.ShowVersion {
		fmt.Printf("versioning version %s\n", Version)
		return nil
	}

	dir := c.Repo
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
	}

	engine := versioning.NewEngine(versioning.NewRegistry(), c.buildConfig())
	info, err := engine.ComputeInfo(versioning.BuildContext{Dir: dir})
	if err != nil {
		return err
	}

	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(info)
	}

	// Outside any repository there is no version to print; stamping
	// decisions belong to the caller.
	if info.IsNone() {
		return nil
	}

	fmt.Println(fieldOutput(info, c.Field))
	return nil
}

func (c *CLI) buildConfig() versioning.Config {
	cfg := versioning.DefaultConfig()
	cfg.SCM = c.SCM
	cfg.DisplayMode = versioning.NamedMode(c.DisplayMode)
	cfg.Snapshot = c.Snapshot

	cfg.Releases = make(map[string]bool, len(c.Releases))
	for _, branchType := range c.Releases {
		cfg.Releases[branchType] = true
	}

	return cfg
}

func fieldOutput(info versioning.VersionInfo, field string) string {
	switch field {
	case "full":
		return info.Full
	case "base":
		return info.Base
	case "branch":
		return info.Branch
	case "branchType":
		return info.BranchType
	case "branchId":
		return info.BranchID
	case "commit":
		return info.Commit
	case "build":
		return info.Build
	case "scm":
		return info.SCM
	default:
		return info.Display
	}
}
