package main

import (
	"io"

	"github.com/nook-lang/nook/nook"
	"github.com/spf13/cobra"
)

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	log     *nook.Logger
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nook",
		Short: "Nook language toolchain",
		Long: `nook scans and parses Nook projects.

A project is a directory holding a nook.manifest file and its entry
source (main.nk unless the manifest names another).`,
		Version:       versionString(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.log = nook.NewLogger(c.stdout, c.stderr, c.verbose)
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		c.newInitCmd(),
		c.newParseCmd(),
		c.newBuildCmd(),
		c.newCheckCmd(),
		c.newFmtCmd(),
		c.newLSPCmd(),
		c.newREPLCmd(),
		c.newVersionCmd(),
	)
	return root
}

func (c *cli) logger() *nook.Logger {
	if c.log == nil {
		c.log = nook.NewLogger(c.stdout, c.stderr, c.verbose)
	}
	return c.log
}

func (c *cli) engine() *nook.Engine {
	return nook.NewEngine(nook.Config{Logger: c.logger()})
}

// reportDiagnostics logs every syntax error of program, with a code frame
// in verbose mode.
func (c *cli) reportDiagnostics(program *nook.Program) {
	log := c.logger()
	for _, d := range program.Diagnostics {
		log.Errorf("%s", d.Error())
		if log.Verbose() {
			if frame := d.Frame(program.Source); frame != "" {
				log.Errorf("%s", frame)
			}
		}
	}
}

func projectDir(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
