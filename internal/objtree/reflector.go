package objtree

// Member is one named member of a container object.
type Member struct {
	Name   string
	Object any
}

// Reflector is the introspection capability the Builder scans through.
// Objects are opaque to the Builder; only the Reflector interprets them.
//
// Optional answers return ok=false when the facility cannot determine them.
type Reflector interface {
	IsModule(obj any) bool
	IsClass(obj any) bool
	IsMethod(obj any) bool
	IsFunction(obj any) bool

	Name(obj any) string
	Doc(obj any) (string, bool)
	Members(obj any) []Member
	SourceFile(obj any) (string, bool)
	ModuleName(obj any) (string, bool)
}

// Hider is implemented by reflectors whose language marks private members
// other than by a leading underscore.
type Hider interface {
	Hidden(name string) bool
}
