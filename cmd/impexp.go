package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/skintrack"
	"github.com/google/subcommands"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the collection document to a file or stdout" }
func (*exportCmd) Usage() string {
	return `skintrack export [-o <file>]

  The exported document is exactly the persisted format, so it can be
  imported on another machine or simply copied in place of the collection
  file.

Usage Examples:
$ skintrack export -o collection.json
$ skintrack export > collection.json
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file (default stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := os.Stdout
	if c.outputFile != "" {
		file, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := skintrack.Export(out, OpenCollection()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge a collection document into the collection" }
func (*importCmd) Usage() string {
	return `skintrack import <file>

  Champions are matched by exact name; a matched champion adopts the
  imported skin list wholesale. Champions absent from the document are left
  untouched.

Usage Examples:
$ skintrack import collection.json
`
}
func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "a single document file is expected")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	col := OpenCollection()
	if err := skintrack.Import(file, col); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if st := SaveCollection(col); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Imported %s.\n", f.Arg(0))
	return subcommands.ExitSuccess
}
