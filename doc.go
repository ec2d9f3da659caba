// # go-dokuwiki
//
// `go-dokuwiki` is a companion to `go doc` that emits DokuWiki markup instead
// of plaintext. It loads a package with `golang.org/x/tools/go/packages`,
// scans its types, methods and functions into a documentation tree, and
// renders one nested page where every object gets a header sized by its depth
// and every doc comment is translated to DokuWiki syntax.
//
// Key capabilities:
//
//   - mirror `go doc` argument parsing so you can inspect packages, symbols,
//     and methods via patterns like `pkg`, `pkg.Type`, or `pkg.Type.Method`.
//   - accept a single `.go` file and document the package containing it.
//   - translate doc comments written either as Go doc comments or Markdown,
//     including `:param name:` style field lists rendered as tables.
//   - write `dokuwiki.txt` by default, any file via the second argument or
//     `-o`, or stdout with `-`.
//   - export a whole package tree into a directory, one page per package plus
//     a `start.txt` index.
//   - ship a Cobra-powered CLI with rich `--help`, `--version`, shell completion,
//     and a `gen-docs` helper for publishing the CLI reference itself.
//
// ## Usage
//
//	go-dokuwiki [flags] [package|file.go|[package.]symbol[.method]] [output]
//
// Examples:
//
//   - Render the current package into dokuwiki.txt:
//
//     go-dokuwiki
//
//   - Render a single type to stdout:
//
//     go-dokuwiki ./internal/objtree.Builder -
//
//   - Export a package tree into a wiki namespace directory:
//
//     go-dokuwiki ./... ./wiki/pages/api/
//
//   - Translate a Markdown file:
//
//     go-dokuwiki translate --syntax markdown README.md -o readme.txt
//
// ## Supported Flags
//
//   - `-o FILE`: write the page to `FILE`, or to a directory tree.
//   - `--depth N`: member levels scanned below the documented object (default 2).
//   - `-u`: include unexported symbols.
//   - `-c`: make symbol matching case-sensitive.
//   - `--syntax`: doc comment syntax, `godoc` (default) or `markdown`.
//   - `--config FILE`: YAML configuration for output tokens and defaults.
//   - `-v`: debug logging on stderr.
//
// ## Configuration
//
// The YAML file may override the scan depth, syntax, default output, log
// level and format, and every DokuWiki token used for field tables, object
// enclosures and code blocks. Values may reference environment variables,
// and a `.env` file in the working directory is loaded first:
//
//	scan:
//	  depth: 3
//	template:
//	  object_enclosure:
//	    open: "<WRAP box>\n"
//	    close: "</WRAP>\n"
//	  code_language: ${DOKU_LANG}
//
// ## Shell Completion
//
//	go-dokuwiki completion bash        # bash
//	go-dokuwiki completion zsh         # zsh
//	go-dokuwiki completion fish | source
//	go-dokuwiki completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
//	go-dokuwiki gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
//
// ## Directory Mode
//
// When the output names an existing directory (or ends in `/`) the tool walks the
// provided package pattern and writes `<name>.txt` per package, nested by the
// package's directory relative to the pattern root so each subdirectory is a
// DokuWiki namespace. `start.txt` links every page with its synopsis.
package main
