package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/nook-lang/nook/nook"
	"github.com/spf13/cobra"
)

type checkIssue struct {
	Kind    string
	Pos     nook.Position
	Message string
}

func (c *cli) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Report syntax errors and lint warnings for a project or file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.check(cmd.OutOrStdout(), projectDir(args))
		},
	}
}

func (c *cli) check(out io.Writer, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	engine := c.engine()
	path := target
	if info.IsDir() {
		path, err = engine.ResolveEntry(target)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
	}

	var issues []checkIssue
	program, err := engine.ParseFile(path)
	switch {
	case err == nil:
		issues = checkProgram(program)
	default:
		var nerr *nook.Error
		if !errors.As(err, &nerr) || nerr.Kind != nook.ErrorLexical {
			return err
		}
		issues = []checkIssue{{Kind: nerr.Kind.String(), Pos: nerr.Pos, Message: nerr.Message}}
	}

	if len(issues) == 0 {
		fmt.Fprintln(out, "No issues found")
		return nil
	}

	for _, issue := range issues {
		line := issue.Pos.Line
		column := issue.Pos.Column
		if line <= 0 {
			line = 1
		}
		if column <= 0 {
			column = 1
		}
		fmt.Fprintf(out, "%s:%d:%d: %s (%s)\n", path, line, column, issue.Message, issue.Kind)
	}

	return fmt.Errorf("check found %d issue(s)", len(issues))
}

// checkProgram collects syntax diagnostics and lint warnings ordered by
// position.
func checkProgram(program *nook.Program) []checkIssue {
	issues := make([]checkIssue, 0, len(program.Diagnostics))
	for _, d := range program.Diagnostics {
		issues = append(issues, checkIssue{Kind: d.Kind.String(), Pos: d.Pos, Message: d.Message})
	}
	issues = append(issues, lintStatements(program.Statements)...)

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
	return issues
}

func lintStatements(statements []nook.Stmt) []checkIssue {
	var warnings []checkIssue
	declared := make(map[string]nook.Position)

	for _, stmt := range statements {
		switch s := stmt.(type) {
		case *nook.VarStmt:
			name := s.Name.Literal
			if first, ok := declared[name]; ok {
				warnings = append(warnings, checkIssue{
					Kind:    "lint",
					Pos:     s.Name.Pos,
					Message: fmt.Sprintf("variable %s redeclared (first declared at %d:%d)", name, first.Line, first.Column),
				})
				continue
			}
			declared[name] = s.Name.Pos
		case *nook.ExpressionStmt:
			if !hasEffect(s.Expr) {
				warnings = append(warnings, checkIssue{
					Kind:    "lint",
					Pos:     s.Pos(),
					Message: "expression result is unused",
				})
			}
		}
	}
	return warnings
}

// hasEffect reports whether evaluating expr can do anything besides
// produce a value.
func hasEffect(expr nook.Expr) bool {
	effect := false
	nook.Walk(expr, func(n nook.Node) bool {
		switch n.(type) {
		case *nook.AssignExpr, *nook.SetExpr, *nook.CallExpr:
			effect = true
			return false
		}
		return !effect
	})
	return effect
}
