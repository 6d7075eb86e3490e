package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/rvallee/teller/prompt"
)

type registerCmd struct {
	name string
	age  int
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new customer" }
func (*registerCmd) Usage() string {
	return `teller register -name <name> -age <age>

  Registers a new customer and prints the allocated customer id. The
  password is asked interactively, never taken from the command line.

Usage Examples:
$ teller register -name "John Smith" -age 30

`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Customer name, letters and spaces only.")
	f.IntVar(&p.age, "age", 0, "Customer age.")
}

func (p *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.age <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -name and -age are required.")
		return subcommands.ExitUsageError
	}

	password := prompt.New(os.Stdout, os.Stdin).Password("choose a password")
	if !password.Ok() {
		fmt.Fprintln(os.Stderr, "Registration aborted.")
		return subcommands.ExitFailure
	}

	l, err := openLedger()
	if err != nil {
		return fail(err)
	}
	defer l.Close()

	c, err := l.Register(p.name, p.age, password.Value)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Welcome %s, your customer id is %d.\n", c.Name, c.ID)
	return subcommands.ExitSuccess
}
