package gosource

import (
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/agentflare-ai/go-dokuwiki/internal/objtree"
)

// typeObject is a named type. For an alias, obj is the aliased named type,
// so an alias of a foreign type reports the foreign package as its owner,
// while alias keeps the declared name.
type typeObject struct {
	pkg   *Package
	obj   *types.TypeName
	alias *types.TypeName
}

type funcObject struct {
	pkg *Package
	fn  *types.Func
}

// valueObject is a const or var; never documented as an object.
type valueObject struct {
	obj types.Object
}

func (p *Package) typeObject(tn *types.TypeName) *typeObject {
	t := &typeObject{pkg: p, obj: tn}
	if tn.IsAlias() {
		if named, ok := types.Unalias(tn.Type()).(*types.Named); ok {
			t.obj, t.alias = named.Obj(), tn
		}
	}
	return t
}

func (p *Package) members() []objtree.Member {
	scope := p.pkg.Types.Scope()
	names := scope.Names()
	members := make([]objtree.Member, 0, len(names))
	for _, name := range names {
		switch o := scope.Lookup(name).(type) {
		case *types.TypeName:
			members = append(members, objtree.Member{Name: name, Object: p.typeObject(o)})
		case *types.Func:
			members = append(members, objtree.Member{Name: name, Object: &funcObject{pkg: p, fn: o}})
		default:
			members = append(members, objtree.Member{Name: name, Object: &valueObject{obj: o}})
		}
	}
	return members
}

// methods lists the methods callable on a value of the type, including
// those promoted from embedded fields, sorted by name.
func (t *typeObject) methods() []objtree.Member {
	sels := typeutil.IntuitiveMethodSet(t.obj.Type(), nil)
	members := make([]objtree.Member, 0, len(sels))
	for _, sel := range sels {
		fn, ok := sel.Obj().(*types.Func)
		if !ok {
			continue
		}
		members = append(members, objtree.Member{Name: fn.Name(), Object: &funcObject{pkg: t.pkg, fn: fn}})
	}
	sort.SliceStable(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}

// Lookup finds a package-level symbol, or a method of a named type when
// method is set.
func (p *Package) Lookup(symbol, method string, caseSensitive bool) (any, bool) {
	match := func(name, target string) bool {
		if caseSensitive {
			return name == target
		}
		return strings.EqualFold(name, target)
	}
	scope := p.pkg.Types.Scope()
	for _, name := range scope.Names() {
		if !match(name, symbol) {
			continue
		}
		switch o := scope.Lookup(name).(type) {
		case *types.TypeName:
			t := p.typeObject(o)
			if method == "" {
				return t, true
			}
			for _, m := range t.methods() {
				if match(m.Name, method) {
					return m.Object, true
				}
			}
		case *types.Func:
			if method == "" {
				return &funcObject{pkg: p, fn: o}, true
			}
		}
	}
	return nil, false
}

// Reflector implements objtree.Reflector for objects produced by Package.
type Reflector struct {
	// Unexported keeps unexported identifiers visible to the scan.
	Unexported bool
}

var (
	_ objtree.Reflector = Reflector{}
	_ objtree.Hider     = Reflector{}
)

// Hidden reports whether a member name is private. The blank identifier is
// always hidden.
func (r Reflector) Hidden(name string) bool {
	if name == "_" {
		return true
	}
	return !r.Unexported && !token.IsExported(name)
}

func (Reflector) IsModule(obj any) bool {
	_, ok := obj.(*Package)
	return ok
}

func (Reflector) IsClass(obj any) bool {
	_, ok := obj.(*typeObject)
	return ok
}

func (Reflector) IsMethod(obj any) bool {
	f, ok := obj.(*funcObject)
	if !ok {
		return false
	}
	sig, ok := f.fn.Type().(*types.Signature)
	return ok && sig.Recv() != nil
}

func (Reflector) IsFunction(obj any) bool {
	_, ok := obj.(*funcObject)
	return ok
}

func (Reflector) Name(obj any) string {
	switch o := obj.(type) {
	case *Package:
		return o.Name()
	case *typeObject:
		if o.alias != nil {
			return o.alias.Name()
		}
		return o.obj.Name()
	case *funcObject:
		return o.fn.Name()
	case *valueObject:
		return o.obj.Name()
	}
	return ""
}

func (Reflector) Doc(obj any) (string, bool) {
	var (
		owner *Package
		o     types.Object
	)
	switch v := obj.(type) {
	case *Package:
		return v.doc, v.doc != ""
	case *typeObject:
		if v.alias != nil {
			if text := v.pkg.docs[v.alias.Pos()]; text != "" {
				return text, true
			}
		}
		owner, o = v.pkg, v.obj
	case *funcObject:
		owner, o = v.pkg, v.fn
	default:
		return "", false
	}
	if o.Pkg() != owner.pkg.Types {
		return "", false
	}
	text, ok := owner.docs[o.Pos()]
	return text, ok && text != ""
}

func (Reflector) Members(obj any) []objtree.Member {
	switch o := obj.(type) {
	case *Package:
		return o.members()
	case *typeObject:
		return o.methods()
	}
	return nil
}

func (Reflector) SourceFile(obj any) (string, bool) {
	switch o := obj.(type) {
	case *Package:
		return o.file, o.file != ""
	case *typeObject:
		return position(o.pkg, o.obj)
	case *funcObject:
		return position(o.pkg, o.fn)
	}
	return "", false
}

func (Reflector) ModuleName(obj any) (string, bool) {
	var o types.Object
	switch v := obj.(type) {
	case *Package:
		return v.PkgPath(), v.PkgPath() != ""
	case *typeObject:
		o = v.obj
	case *funcObject:
		o = v.fn
	case *valueObject:
		o = v.obj
	default:
		return "", false
	}
	if o.Pkg() == nil {
		return "", false
	}
	return o.Pkg().Path(), true
}

func position(p *Package, o types.Object) (string, bool) {
	if !o.Pos().IsValid() || p.pkg.Fset == nil {
		return "", false
	}
	file := p.pkg.Fset.Position(o.Pos()).Filename
	return file, file != ""
}
