package gosource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/go-dokuwiki/internal/objtree"
)

const exampleDir = "../../testdata/example"

func loadExample(t *testing.T) *Package {
	t.Helper()
	pkg, err := Load(context.Background(), exampleDir, Config{})
	require.NoError(t, err)
	return pkg
}

func TestLoadPackage(t *testing.T) {
	pkg := loadExample(t)
	assert.Equal(t, "example", pkg.Name())
	assert.Equal(t, "github.com/agentflare-ai/go-dokuwiki/testdata/example", pkg.PkgPath())
	assert.Contains(t, pkg.Doc(), "Package example demonstrates documentation rendering")
	assert.Equal(t, "Package example demonstrates documentation rendering for go-dokuwiki tests.", pkg.Synopsis())
	assert.NotEmpty(t, pkg.Dir())
}

func TestLoadGoFile(t *testing.T) {
	pkg, err := Load(context.Background(), exampleDir+"/example.go", Config{})
	require.NoError(t, err)
	assert.Equal(t, "example", pkg.Name())

	_, err = Load(context.Background(), exampleDir+"/missing.go", Config{})
	assert.Error(t, err)
}

func TestLoadFailure(t *testing.T) {
	_, err := Load(context.Background(), "./does/not/exist", Config{})
	assert.Error(t, err)
}

func TestScanPackage(t *testing.T) {
	pkg := loadExample(t)
	d := objtree.NewBuilder(Reflector{}).Scan(pkg, objtree.DefaultDepth)

	assert.Equal(t, objtree.KindModule, d.Kind)
	assert.Equal(t, pkg.PkgPath(), d.ModuleName)
	assert.Equal(t, []string{"Greeter", "NewGreeter", "Salutation", "Speaker"}, d.Keys(),
		"aliases of foreign types and values are skipped")

	alias, ok := d.Child("Salutation")
	require.True(t, ok)
	assert.Equal(t, "Salutation", alias.Name, "local aliases keep their declared name")
	assert.Equal(t, objtree.KindClass, alias.Kind)
	assert.Equal(t, "Salutation is a local alias of Greeter.\n", alias.Doc)
	assert.Equal(t, []string{"Greet"}, alias.Keys())

	greeter, ok := d.Child("Greeter")
	require.True(t, ok)
	assert.Equal(t, objtree.KindClass, greeter.Kind)
	assert.Equal(t, "Greeter produces greeting messages.\n", greeter.Doc)
	assert.Equal(t, []string{"Greet"}, greeter.Keys(), "promoted foreign methods are skipped")

	greet, _ := greeter.Child("Greet")
	require.NotNil(t, greet)
	assert.Equal(t, objtree.KindMethod, greet.Kind)
	assert.Equal(t, "Greet returns a friendly message.\n", greet.Doc)

	fn, _ := d.Child("NewGreeter")
	require.NotNil(t, fn)
	assert.Equal(t, objtree.KindFunction, fn.Kind)
	assert.Contains(t, fn.Doc, ":param name: who to greet")

	speaker, _ := d.Child("Speaker")
	require.NotNil(t, speaker)
	speak, ok := speaker.Child("Speak")
	require.True(t, ok)
	assert.Equal(t, "Speak says something.\n", speak.Doc)
}

func TestScanUnexported(t *testing.T) {
	pkg := loadExample(t)
	d := objtree.NewBuilder(Reflector{Unexported: true}).Scan(pkg, objtree.DefaultDepth)
	greeter, ok := d.Child("Greeter")
	require.True(t, ok)
	assert.Equal(t, []string{"Greet", "secret"}, greeter.Keys())

	secret, _ := greeter.Child("secret")
	require.NotNil(t, secret)
	assert.Equal(t, "", secret.Doc)
}

func TestHidden(t *testing.T) {
	assert.True(t, Reflector{}.Hidden("secret"))
	assert.False(t, Reflector{}.Hidden("Greet"))
	assert.False(t, Reflector{Unexported: true}.Hidden("secret"))
	assert.True(t, Reflector{Unexported: true}.Hidden("_"))
}

func TestLookup(t *testing.T) {
	pkg := loadExample(t)
	r := Reflector{}

	obj, ok := pkg.Lookup("greeter", "", false)
	require.True(t, ok)
	assert.True(t, r.IsClass(obj))
	assert.Equal(t, "Greeter", r.Name(obj))

	_, ok = pkg.Lookup("greeter", "", true)
	assert.False(t, ok)

	obj, ok = pkg.Lookup("Greeter", "greet", false)
	require.True(t, ok)
	assert.True(t, r.IsMethod(obj))

	obj, ok = pkg.Lookup("NewGreeter", "", true)
	require.True(t, ok)
	assert.True(t, r.IsFunction(obj))
	assert.False(t, r.IsMethod(obj))

	obj, ok = pkg.Lookup("Salutation", "", true)
	require.True(t, ok)
	assert.Equal(t, "Salutation", r.Name(obj))

	_, ok = pkg.Lookup("Greeter", "Missing", false)
	assert.False(t, ok)
	_, ok = pkg.Lookup("NewGreeter", "Method", false)
	assert.False(t, ok)
}

func TestLoadTree(t *testing.T) {
	pkgs, err := LoadTree(context.Background(), exampleDir, Config{})
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	assert.Equal(t, "example", pkgs[0].Name())
	assert.Equal(t, "subpkg", pkgs[1].Name())
	assert.Equal(t, "Package subpkg", pkgs[1].Synopsis()[:len("Package subpkg")])
}

func TestBuildPatterns(t *testing.T) {
	assert.Equal(t, []string{".", "./..."}, buildPatterns(""))
	assert.Equal(t, []string{"./a", "./a/..."}, buildPatterns("./a"))
	assert.Equal(t, []string{"./a/", "./a/..."}, buildPatterns("./a/"))
	assert.Equal(t, []string{"./a/..."}, buildPatterns("./a/..."))
}
