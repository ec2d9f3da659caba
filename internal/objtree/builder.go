// Package objtree builds documentation hierarchies (module, class, method,
// function) from a live object graph exposed through a Reflector.
package objtree

import (
	"log/slog"
	"strings"

	"github.com/agentflare-ai/go-dokuwiki/internal/logfields"
)

// DefaultDepth scans an object, its members and their members: enough for
// a module with classes and methods.
const DefaultDepth = 2

// Builder scans objects into Descriptor trees. It keeps no state between
// scans and may be used concurrently over disjoint object graphs.
type Builder struct {
	r      Reflector
	hidden func(name string) bool
	logger *slog.Logger
}

type Option func(*Builder)

// WithLogger sets the logger used for debug traces of skipped members.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithHidden overrides the private-name rule.
func WithHidden(fn func(name string) bool) Option {
	return func(b *Builder) {
		if fn != nil {
			b.hidden = fn
		}
	}
}

func NewBuilder(r Reflector, opts ...Option) *Builder {
	b := &Builder{
		r:      r,
		hidden: underscoreHidden,
		logger: slog.Default(),
	}
	if h, ok := r.(Hider); ok {
		b.hidden = h.Hidden
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func underscoreHidden(name string) bool {
	return strings.HasPrefix(name, "_")
}

// Classify checks module, class, method and function in that order;
// methods must be tested before functions since some facilities report
// bound methods as functions too.
func (b *Builder) Classify(obj any) Kind {
	switch {
	case b.r.IsModule(obj):
		return KindModule
	case b.r.IsClass(obj):
		return KindClass
	case b.r.IsMethod(obj):
		return KindMethod
	case b.r.IsFunction(obj):
		return KindFunction
	default:
		return KindOther
	}
}

// Scan describes obj and, for modules and classes, up to depth levels of
// members. Depth 0 describes obj alone. Scan never fails: facts the
// reflector cannot determine are left empty.
func (b *Builder) Scan(obj any, depth int) *Descriptor {
	return b.scan("", obj, depth)
}

func (b *Builder) scan(key string, obj any, depth int) *Descriptor {
	d := &Descriptor{
		Key:  key,
		Name: b.r.Name(obj),
		Kind: b.Classify(obj),
	}
	d.Doc, _ = b.r.Doc(obj)
	d.SourceFile, _ = b.r.SourceFile(obj)
	d.ModuleName, _ = b.r.ModuleName(obj)

	if !d.Kind.Container() || depth <= 0 {
		return d
	}
	d.Children = []*Descriptor{}
	for _, m := range b.r.Members(obj) {
		if b.hidden(m.Name) {
			continue
		}
		kind := b.Classify(m.Object)
		if kind == KindOther {
			continue
		}
		if !b.owned(d, m.Object) {
			b.logger.Debug("skipping foreign member",
				logfields.Object(d.Name),
				logfields.Member(m.Name),
				logfields.Kind(kind.String()),
				logfields.Reason("declared outside container"))
			continue
		}
		d.Children = append(d.Children, b.scan(m.Name, m.Object, depth-1))
	}
	b.logger.Debug("scanned container",
		logfields.Object(d.Name),
		logfields.Kind(d.Kind.String()),
		logfields.Depth(depth),
		slog.Int("members", len(d.Children)))
	return d
}

// owned reports whether member was declared by the container: same source
// file, or same owning module. An undeterminable fact never matches.
func (b *Builder) owned(container *Descriptor, member any) bool {
	if file, ok := b.r.SourceFile(member); ok && file != "" && container.SourceFile != "" && file == container.SourceFile {
		return true
	}
	if mod, ok := b.r.ModuleName(member); ok && mod != "" && container.ModuleName != "" && mod == container.ModuleName {
		return true
	}
	return false
}
