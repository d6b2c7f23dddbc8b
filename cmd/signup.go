package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mgraber/tradebook"
)

type signupCmd struct {
	username string
	password string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new user account" }
func (*signupCmd) Usage() string {
	return `tbk signup -u <username> -p <password>

  Creates a new user. The password must be at least 8 characters long and
  contain a digit, a letter and a special character (see 'tbk topic password').
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username (required)")
	f.StringVar(&c.password, "p", "", "Password (required)")
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.password == "" {
		return fail("Error: both -u and -p are required.")
	}

	store := openCredentials(loadConfig())
	outcome, err := store.AddUser(c.username, c.password)
	if err != nil {
		return fail("Error saving credentials: %v", err)
	}

	switch outcome {
	case tradebook.Added:
		fmt.Printf("Sign up successful. You can now sign in as %q.\n", c.username)
		return subcommands.ExitSuccess
	case tradebook.DuplicateUser:
		return fail("Error: username %q already exists.", c.username)
	case tradebook.PasswordPolicyFailed:
		return fail("Error: password must be at least 8 characters long and contain a digit, a letter and a special character.")
	default:
		return fail("Error: username must be non-empty and contain no whitespace.")
	}
}
