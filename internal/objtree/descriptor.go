package objtree

// Kind classifies a scanned object.
type Kind int

const (
	KindOther Kind = iota
	KindModule
	KindClass
	KindMethod
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindMethod:
		return "method"
	case KindFunction:
		return "function"
	default:
		return "other"
	}
}

// Container reports whether objects of this kind have scannable members.
func (k Kind) Container() bool {
	return k == KindModule || k == KindClass
}

// Descriptor is the scanned form of one object. Empty optional fields mean
// the reflector could not determine them.
type Descriptor struct {
	// Key is the member name the object was found under; empty for the root.
	Key        string
	Name       string
	Kind       Kind
	Doc        string
	SourceFile string
	ModuleName string

	// Children is nil unless the object is a module or class scanned with
	// depth left. Order is discovery order.
	Children []*Descriptor
}

// Child returns the child found under the given member name.
func (d *Descriptor) Child(key string) (*Descriptor, bool) {
	for _, c := range d.Children {
		if c.Key == key {
			return c, true
		}
	}
	return nil, false
}

// Keys lists member names of the children in discovery order.
func (d *Descriptor) Keys() []string {
	keys := make([]string, 0, len(d.Children))
	for _, c := range d.Children {
		keys = append(keys, c.Key)
	}
	return keys
}
