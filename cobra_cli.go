package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/go-dokuwiki/internal/config"
)

const rootLongDesc = `
go-dokuwiki is a companion to go doc that renders DokuWiki pages instead of plaintext.
It loads a package (or the package containing a single .go file), scans its types,
methods and functions, and writes one nested page with every doc comment translated
to DokuWiki markup:

  • pkg, pkg.Type and pkg.Type.Method select the object to document
  • the second argument (or -o) names the output file; "-" writes to stdout
  • an output directory documents a whole package tree, one page per package
  • translate converts a standalone doc comment or Markdown file

Shell completion and Markdown reference docs for the CLI itself are built in.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, logw: os.Stderr}
	cmd := &cobra.Command{
		Use:           "go-dokuwiki [flags] [package|file.go|[package.]symbol[.method]] [output]",
		Short:         "Render Go documentation as DokuWiki pages",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&app.opts.configPath, "config", "", "YAML configuration file")
	persistent.StringVar(&app.opts.syntax, "syntax", "", "docstring syntax: godoc or markdown")
	persistent.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging")

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write the page to this file or directory (default "+config.DefaultOutput+")")
	flags.IntVar(&app.opts.depth, "depth", 0, "member levels to scan below the documented object (default 2)")
	flags.BoolVarP(&app.opts.unexported, "unexported", "u", false, "document unexported symbols as well as exported")
	flags.BoolVarP(&app.opts.caseSensitive, "case-sensitive", "c", false, "symbol matching honors case (paths not affected)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args)
	}

	cmd.AddCommand(newTranslateCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newTranslateCmd(app *cliApp) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Translate a doc comment or Markdown file to DokuWiki markup",
		Long: strings.TrimSpace(`
Read a standalone docstring from the given file (stdin when omitted or "-")
and write its DokuWiki rendering to stdout, or to the file named by -o.

Example:

  go-dokuwiki translate --syntax markdown README.md -o readme.txt
`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		input := "-"
		if len(args) == 1 {
			input = args[0]
		}
		return app.translate(cmd.InOrStdin(), input, output)
	}
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for go-dokuwiki.

The output should be evaluated by your shell. For example:

  # bash
  go-dokuwiki completion bash > /usr/local/etc/bash_completion.d/go-dokuwiki

  # zsh
  go-dokuwiki completion zsh > "${fpath[1]}/_go-dokuwiki"

  # fish
  go-dokuwiki completion fish | source

  # PowerShell
  go-dokuwiki completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  go-dokuwiki gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
