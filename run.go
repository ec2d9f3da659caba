package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/agentflare-ai/go-dokuwiki/internal/config"
	"github.com/agentflare-ai/go-dokuwiki/internal/docparse"
	"github.com/agentflare-ai/go-dokuwiki/internal/dokuwiki"
	derrors "github.com/agentflare-ai/go-dokuwiki/internal/errors"
	"github.com/agentflare-ai/go-dokuwiki/internal/gosource"
	"github.com/agentflare-ai/go-dokuwiki/internal/logfields"
	"github.com/agentflare-ai/go-dokuwiki/internal/objtree"
)

type options struct {
	configPath    string
	syntax        string
	verbose       bool
	outputPath    string
	depth         int
	unexported    bool
	caseSensitive bool
}

type invocation struct {
	pkgExpr string
	symbol  string
	method  string
}

type cliApp struct {
	stdout io.Writer
	logw   io.Writer
	opts   options
	cfg    *config.Config
	logger *slog.Logger
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

// setup loads the configuration, applies flag overrides and installs the logger.
func (app *cliApp) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(app.opts.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("syntax") {
		cfg.Syntax = app.opts.syntax
	}
	if flags.Changed("depth") {
		depth := app.opts.depth
		cfg.Scan.Depth = &depth
	}
	if flags.Changed("unexported") {
		cfg.Scan.Unexported = app.opts.unexported
	}
	if app.opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.cfg = cfg
	app.logger = newLogger(app.logw, cfg.Log)
	slog.SetDefault(app.logger)
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (app *cliApp) assembler() (*dokuwiki.Assembler, error) {
	parser, err := docparse.New(docparse.Syntax(app.cfg.Syntax))
	if err != nil {
		return nil, derrors.ValidationFailed("syntax", err.Error())
	}
	return dokuwiki.NewAssembler(app.cfg.DokuTemplate(), parser), nil
}

func (app *cliApp) builder() *objtree.Builder {
	return objtree.NewBuilder(gosource.Reflector{Unexported: app.cfg.Scan.Unexported}, objtree.WithLogger(app.logger))
}

func (app *cliApp) execute(ctx context.Context, positionals []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	target := "."
	if len(positionals) > 0 {
		target = positionals[0]
	}
	output := app.cfg.Output
	if len(positionals) > 1 {
		output = positionals[1]
	}
	if app.opts.outputPath != "" {
		output = app.opts.outputPath
	}
	asm, err := app.assembler()
	if err != nil {
		return err
	}
	if wantsDirectoryOutput(output) {
		return app.documentPackageTree(ctx, asm, target, output)
	}

	var lastErr error
	for _, cand := range buildCandidates(target) {
		pkg, err := gosource.Load(ctx, cand.pkgExpr, gosource.Config{})
		if err != nil {
			app.logger.Debug("candidate did not load", logfields.Package(cand.pkgExpr), logfields.Error(err))
			lastErr = derrors.LoadFailed(cand.pkgExpr, err)
			continue
		}
		root := any(pkg)
		if cand.symbol != "" {
			obj, ok := pkg.Lookup(cand.symbol, cand.method, app.opts.caseSensitive)
			if !ok {
				lastErr = derrors.NoSymbol(displaySymbol(cand.symbol, cand.method), pkg.PkgPath())
				continue
			}
			root = obj
		}
		desc := app.builder().Scan(root, app.cfg.Depth())
		focus := dokuwiki.Focus{}
		if cand.symbol != "" {
			desc, focus = symbolPage(pkg, desc, cand)
		}
		page := asm.Render(desc, 0, focus)
		if err := writeOutput(output, app.stdout, []byte(page)); err != nil {
			return derrors.WriteFailed(output, err)
		}
		app.logger.Info("wrote page",
			logfields.Package(pkg.PkgPath()),
			logfields.Object(desc.Name),
			logfields.Output(output))
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return errors.New("unable to locate documentation target")
}

func (app *cliApp) translate(stdin io.Reader, input, output string) error {
	var (
		data []byte
		err  error
	)
	if input == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return derrors.LoadFailed(input, err)
	}
	asm, err := app.assembler()
	if err != nil {
		return err
	}
	if err := writeOutput(output, app.stdout, []byte(asm.TranslateDoc(string(data)))); err != nil {
		return derrors.WriteFailed(output, err)
	}
	return nil
}

// symbolPage nests a selected symbol under its package header. The focus
// keeps the package overview off the page.
func symbolPage(pkg *gosource.Package, sym *objtree.Descriptor, cand invocation) (*objtree.Descriptor, dokuwiki.Focus) {
	sym.Key = sym.Name
	page := &objtree.Descriptor{
		Name:       pkg.Name(),
		Kind:       objtree.KindModule,
		Doc:        pkg.Doc(),
		ModuleName: pkg.PkgPath(),
		Children:   []*objtree.Descriptor{sym},
	}
	focus := dokuwiki.Focus{Class: cand.symbol, Function: cand.method}
	if sym.Kind == objtree.KindFunction {
		focus = dokuwiki.Focus{Function: cand.symbol}
	}
	return page, focus
}

func displaySymbol(symbol, method string) string {
	if symbol == "" {
		return ""
	}
	if method == "" {
		return symbol
	}
	return symbol + "." + method
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var legacyLongFlagSet = map[string]struct{}{
	"config":         {},
	"syntax":         {},
	"verbose":        {},
	"output":         {},
	"depth":          {},
	"unexported":     {},
	"case-sensitive": {},
}

// normalizeLegacyArgs accepts go doc style single-dash long flags.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || arg == "-" || len(arg) == 2 {
			converted = append(converted, arg)
			continue
		}
		name := arg[1:]
		suffix := ""
		if idx := strings.Index(name, "="); idx > 0 {
			name, suffix = name[:idx], name[idx:]
		}
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name+suffix)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}

func buildCandidates(arg string) []invocation {
	if arg == "" || arg == "." {
		return []invocation{{pkgExpr: "."}}
	}
	if strings.HasSuffix(arg, ".go") {
		return []invocation{{pkgExpr: arg}}
	}
	seen := make(map[string]struct{})
	var candidates []invocation
	add := func(pkgExpr, symbol, method string) {
		if pkgExpr == "" {
			pkgExpr = "."
		}
		key := pkgExpr + "|" + symbol + "|" + method
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, invocation{pkgExpr: pkgExpr, symbol: symbol, method: method})
	}

	if startsWithUpper(arg) && !strings.ContainsAny(arg, `/\`) {
		// Force local symbol lookup first.
		symbol, method := splitSymbol(arg)
		add(".", symbol, method)
	}

	// Treat as package path (no symbol).
	add(arg, "", "")

	if strings.Contains(arg, ".") {
		for _, cand := range parseCompound(arg) {
			add(cand.pkgExpr, cand.symbol, cand.method)
		}
	}

	// Finally, treat as local symbol if not already present.
	if !strings.ContainsAny(arg, `/\`) {
		if symbol, method := splitSymbol(arg); symbol != "" {
			add(".", symbol, method)
		}
	}

	return candidates
}

func parseCompound(arg string) []invocation {
	var result []invocation
	for i := 0; i < len(arg); i++ {
		if arg[i] != '.' {
			continue
		}
		pkgExpr := arg[:i]
		symbolSpec := arg[i+1:]
		if pkgExpr == "" || strings.HasSuffix(pkgExpr, ".") || strings.HasPrefix(symbolSpec, "/") || strings.HasPrefix(symbolSpec, ".") {
			continue
		}
		symbol, method := splitSymbol(symbolSpec)
		result = append(result, invocation{
			pkgExpr: pkgExpr,
			symbol:  symbol,
			method:  method,
		})
	}
	return result
}

func splitSymbol(spec string) (string, string) {
	if spec == "" {
		return "", ""
	}
	parts := strings.Split(spec, ".")
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], ".")
}

func startsWithUpper(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func wantsDirectoryOutput(path string) bool {
	if path == "" || path == "-" {
		return false
	}
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir()
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false
	}
	return strings.HasSuffix(path, string(os.PathSeparator)) || strings.HasSuffix(path, "/")
}

type treePage struct {
	relDir  string
	name    string
	pkgPath string
	summary string
	page    string
}

func (app *cliApp) documentPackageTree(ctx context.Context, asm *dokuwiki.Assembler, root, outDir string) error {
	pkgs, err := gosource.LoadTree(ctx, root, gosource.Config{})
	if err != nil {
		return derrors.LoadFailed(root, err)
	}
	if len(pkgs) == 0 {
		return derrors.LoadFailed(root, fmt.Errorf("no packages matched %q", root))
	}
	baseDir := resolveBaseDir(root)
	pages := make([]treePage, 0, len(pkgs))
	for _, pkg := range pkgs {
		pkgDir := absolutePath(pkg.Dir())
		if baseDir == "" && pkgDir != "" {
			baseDir = pkgDir
		}
		desc := app.builder().Scan(pkg, app.cfg.Depth())
		pages = append(pages, treePage{
			relDir:  deriveRelativeDir(pkg, baseDir, pkgDir),
			name:    strings.ToLower(pkg.Name()),
			pkgPath: pkg.PkgPath(),
			summary: strings.TrimSpace(pkg.Synopsis()),
			page:    asm.Render(desc, 0, dokuwiki.Focus{}),
		})
	}
	if err := writePagesToDir(outDir, pages); err != nil {
		return derrors.WriteFailed(outDir, err)
	}
	app.logger.Info("wrote package tree", logfields.Output(outDir), slog.Int("pages", len(pages)))
	return nil
}

// writePagesToDir writes one page per package, namespaced by its relative
// directory, and a start page linking them.
func writePagesToDir(outDir string, pages []treePage) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].relDir < pages[j].relDir
	})
	for _, p := range pages {
		targetDir := outDir
		if p.relDir != "" && p.relDir != "." {
			targetDir = filepath.Join(outDir, filepath.FromSlash(p.relDir))
		}
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(targetDir, p.name+".txt"), []byte(p.page), 0o644); err != nil {
			return err
		}
	}
	return os.WriteFile(filepath.Join(outDir, "start.txt"), buildIndex(pages), 0o644)
}

func pageID(p treePage) string {
	if p.relDir == "" || p.relDir == "." {
		return p.name
	}
	return strings.ReplaceAll(strings.ToLower(p.relDir), "/", ":") + ":" + p.name
}

func buildIndex(pages []treePage) []byte {
	var b strings.Builder
	b.WriteString("====== Packages ======\n\n")
	for _, p := range pages {
		title := p.pkgPath
		if title == "" {
			title = p.name
		}
		if p.summary != "" {
			fmt.Fprintf(&b, "  * [[%s|%s]] -- %s\n", pageID(p), title, p.summary)
		} else {
			fmt.Fprintf(&b, "  * [[%s|%s]]\n", pageID(p), title)
		}
	}
	b.WriteString("\n")
	return []byte(b.String())
}

func resolveBaseDir(root string) string {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	root = strings.TrimSuffix(root, "/...")
	root = strings.TrimSuffix(root, "\\...")
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return ""
	}
	base, err := filepath.Abs(root)
	if err != nil {
		return ""
	}
	return base
}

func absolutePath(dir string) string {
	if dir == "" {
		return ""
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	return abs
}

func deriveRelativeDir(pkg *gosource.Package, baseDir, pkgDir string) string {
	if baseDir != "" && pkgDir != "" {
		if rel, err := filepath.Rel(baseDir, pkgDir); err == nil && rel != "" && !strings.HasPrefix(rel, "..") {
			if rel == "." {
				return "."
			}
			return filepath.ToSlash(rel)
		}
	}
	if pkg.PkgPath() != "" {
		return pkg.PkgPath()
	}
	if pkgDir != "" {
		return filepath.Base(pkgDir)
	}
	return pkg.Name()
}
