package main

import (
	"io"
	"os"
)

func main() {
	if err := runCLI(os.Args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// runCLI executes the command line in args (program name first). Errors are
// logged to stderr before being returned.
func runCLI(args []string, stdout, stderr io.Writer) error {
	c := &cli{stdout: stdout, stderr: stderr}
	root := c.newRootCmd()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		c.logger().Errorf("%v", err)
	}
	return err
}
