package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func (a *app) startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start FILENAME",
		Short: "Use FILENAME to provide snippets, starting from the first one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.store.Start(args[0]); err != nil {
				return fmt.Errorf("failed to create configuration: %w", err)
			}
			return nil
		},
	}
}

func (a *app) nextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Print the current snippet and advance to the next one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printSnippet(true)
		},
	}
}

func (a *app) peekCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "peek",
		Short: "Print the current snippet without advancing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printSnippet(false)
		},
	}
}

func (a *app) printSnippet(advance bool) error {
	c, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var text string
	if advance {
		text, err = c.Next()
	} else {
		text, err = c.Peek()
	}
	if err != nil {
		which := "current"
		if advance {
			which = "next"
		}
		return fmt.Errorf("failed to obtain %s snippet: %w", which, err)
	}

	_, err = io.WriteString(a.stdout, text)
	return err
}

func (a *app) forwardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forward [N]",
		Short: "Skip N snippets forward (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args)
			if err != nil {
				return err
			}
			c, err := a.store.Load()
			if err != nil {
				return fmt.Errorf("failed to forward: %w", err)
			}
			if err = c.Forward(count); err != nil {
				return fmt.Errorf("failed to forward: %w", err)
			}
			return nil
		},
	}
}

func (a *app) rewindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rewind [N]",
		Short: "Go back N snippets (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args)
			if err != nil {
				return err
			}
			c, err := a.store.Load()
			if err != nil {
				return fmt.Errorf("failed to rewind: %w", err)
			}
			if err = c.Rewind(count); err != nil {
				return fmt.Errorf("failed to rewind: %w", err)
			}
			return nil
		},
	}
}

type statusReport struct {
	FilePath string `yaml:"file_path"`
	Position uint64 `yaml:"position"`
	Snippets int    `yaml:"snippets"`
}

func (a *app) statusCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the snippet file in use and the cursor position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "yaml" {
				return fmt.Errorf("invalid output %q: must be text or yaml", output)
			}
			c, err := a.store.Load()
			if err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			count, err := c.Count()
			if err != nil {
				return fmt.Errorf("failed to count snippets: %w", err)
			}

			report := statusReport{
				FilePath: c.FilePath(),
				Position: c.Position(),
				Snippets: count,
			}
			if output == "yaml" {
				data, err := yaml.Marshal(report)
				if err != nil {
					return err
				}
				_, err = a.stdout.Write(data)
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "file:     %s\nposition: %d\nsnippets: %d\n", report.FilePath, report.Position, report.Snippets)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, yaml)")
	return cmd
}
