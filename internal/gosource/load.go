// Package gosource exposes loaded Go packages to the object-tree builder:
// packages are modules, named types are classes, and funcs are methods or
// functions depending on their receiver.
package gosource

import (
	"context"
	"fmt"
	"go/ast"
	"go/doc"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName | packages.NeedCompiledGoFiles | packages.NeedFiles |
	packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
	packages.NeedTypesSizes | packages.NeedModule | packages.NeedImports

// Config controls package loading.
type Config struct {
	// Dir is the directory patterns are resolved in; empty means the
	// working directory.
	Dir string
}

// Package is a loaded, type-checked package with its declaration docs.
type Package struct {
	pkg      *packages.Package
	doc      string
	synopsis string
	file     string
	docs     map[token.Pos]string
}

func (p *Package) Name() string     { return p.pkg.Name }
func (p *Package) PkgPath() string  { return p.pkg.PkgPath }
func (p *Package) Doc() string      { return p.doc }
func (p *Package) Synopsis() string { return p.synopsis }

// Dir is the directory holding the package sources.
func (p *Package) Dir() string {
	if len(p.pkg.GoFiles) > 0 {
		return filepath.Dir(p.pkg.GoFiles[0])
	}
	if len(p.pkg.CompiledGoFiles) > 0 {
		return filepath.Dir(p.pkg.CompiledGoFiles[0])
	}
	return ""
}

// Load loads the package matched by target. A path to a .go file loads the
// package containing that file, resolved from the file's directory.
func Load(ctx context.Context, target string, cfg Config) (*Package, error) {
	pattern := target
	if pattern == "" {
		pattern = "."
	}
	if strings.HasSuffix(pattern, ".go") {
		abs, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, err
		}
		pattern = "file=" + abs
		cfg.Dir = filepath.Dir(abs)
	}
	pkgs, err := packages.Load(&packages.Config{Context: ctx, Dir: cfg.Dir, Mode: loadMode}, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages matched %q", target)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%s", pkg.Errors[0])
	}
	return newPackage(pkg)
}

// LoadTree loads root and every package below it, sorted by import path.
func LoadTree(ctx context.Context, root string, cfg Config) ([]*Package, error) {
	pkgs, err := packages.Load(&packages.Config{Context: ctx, Dir: cfg.Dir, Mode: loadMode}, buildPatterns(root)...)
	if err != nil {
		return nil, err
	}
	unique := make(map[string]*packages.Package)
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("%s", pkg.Errors[0])
		}
		unique[pkg.PkgPath] = pkg
	}
	result := make([]*Package, 0, len(unique))
	for _, pkg := range unique {
		p, err := newPackage(pkg)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PkgPath() < result[j].PkgPath()
	})
	return result, nil
}

func buildPatterns(root string) []string {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	root = filepath.ToSlash(root)
	patterns := []string{root}
	if !strings.Contains(root, "...") {
		recursive := root
		if recursive == "." {
			recursive = "./..."
		} else if strings.HasSuffix(recursive, "/") {
			recursive = recursive + "..."
		} else {
			recursive = recursive + "/..."
		}
		patterns = append(patterns, recursive)
	}
	return patterns
}

func newPackage(pkg *packages.Package) (*Package, error) {
	p := &Package{
		pkg:  pkg,
		docs: make(map[token.Pos]string),
	}
	for i, f := range pkg.Syntax {
		collectDocs(f, p.docs)
		if f.Doc != nil && p.file == "" && i < len(pkg.CompiledGoFiles) {
			p.file = pkg.CompiledGoFiles[i]
		}
	}
	if p.file == "" && len(pkg.CompiledGoFiles) > 0 {
		p.file = pkg.CompiledGoFiles[0]
	}
	docPkg, err := doc.NewFromFiles(pkg.Fset, pkg.Syntax, pkg.PkgPath, doc.AllDecls|doc.PreserveAST)
	if err != nil {
		return nil, err
	}
	p.doc = docPkg.Doc
	p.synopsis = docPkg.Synopsis(docPkg.Doc)
	return p, nil
}

// collectDocs indexes doc comments by the position of the declared name,
// which is also the position of the corresponding types.Object.
func collectDocs(f *ast.File, docs map[token.Pos]string) {
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Doc != nil {
				docs[d.Name.Pos()] = d.Doc.Text()
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				cg := ts.Doc
				if cg == nil && !d.Lparen.IsValid() {
					cg = d.Doc
				}
				if cg != nil {
					docs[ts.Name.Pos()] = cg.Text()
				}
				it, ok := ts.Type.(*ast.InterfaceType)
				if !ok || it.Methods == nil {
					continue
				}
				for _, m := range it.Methods.List {
					if m.Doc == nil {
						continue
					}
					for _, name := range m.Names {
						docs[name.Pos()] = m.Doc.Text()
					}
				}
			}
		}
	}
}
