/*
File : gplc/cmd/gplc/main.go
*/
// Command gplc is the `compile` CLI the core owns: a thin wrapper
// around internal/driver.Compile. Everything about project
// scaffolding (`init`, `build`, `run`) is an external collaborator's
// concern and is not implemented here.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/gplang/gplc/internal/config"
	"github.com/gplang/gplc/internal/driver"
)

var successColor = color.New(color.FgGreen)

func main() {
	app := &cli.App{
		Name:  "gplc",
		Usage: "compile a GP-λ source file to its host-language equivalent",
		Commands: []*cli.Command{
			compileCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func compileCommand() *cli.Command {
	return &cli.Command{
		Name:  "compile",
		Usage: "compile a single .gpl source file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "the GP-λ source file to compile"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output path (default: input with its extension replaced by .cs)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print per-stage progress to standard output"},
		},
		Action: runCompile,
	}
}

func runCompile(c *cli.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	input := c.String("input")
	output := c.String("output")
	if output == "" && cfg.OutputDir != "" {
		output = filepath.Join(cfg.OutputDir, filepath.Base(driver.DefaultOutputPath(input)))
	}

	verbose := cfg.Verbose
	if c.IsSet("verbose") {
		verbose = c.Bool("verbose")
	}

	opts := driver.Options{
		InputPath:  input,
		OutputPath: output,
		Verbose:    verbose,
	}

	res := driver.Compile(opts)
	if len(res.Diagnostics) > 0 {
		driver.PrintDiagnostics(os.Stderr, res.Diagnostics)
		os.Exit(1)
	}

	if opts.Verbose {
		successColor.Fprintf(os.Stdout, "wrote %s\n", res.OutputPath)
	}
	return nil
}
