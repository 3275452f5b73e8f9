package main

import (
	"fmt"

	"github.com/nook-lang/nook/nook"
	"github.com/spf13/cobra"
)

func (c *cli) newInitCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a project manifest and starter source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := nook.CreateProject(dir, args[0])
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			c.logger().Infof("Created project %s in %s", args[0], path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to create the project in")
	return cmd
}

func (c *cli) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [dir]",
		Short: "Parse the project and print its syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := c.engine().ParseProject(projectDir(args))
			if err != nil {
				return err
			}
			if program.HasErrors() {
				c.reportDiagnostics(program)
				return fmt.Errorf("parse found %d syntax error(s)", len(program.Diagnostics))
			}
			c.logger().Debugf("syntax tree of %s", program.Path)
			return nook.PrintTree(cmd.OutOrStdout(), program.Statements)
		},
	}
}

func (c *cli) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [dir]",
		Short: "Build the project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := c.engine().Build(projectDir(args))
			if err != nil {
				if program != nil {
					c.reportDiagnostics(program)
				}
				return err
			}
			c.logger().Infof("Built %s (%d statements)", program.Path, len(program.Statements))
			return nil
		},
	}
}
