package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CategoryConfig, SeverityFatal, "bad value")
	assert.Equal(t, "config: bad value", err.Error())

	cause := stderrors.New("disk full")
	wrapped := Wrap(cause, CategoryFileSystem, SeverityError, "could not write")
	assert.Equal(t, "filesystem: could not write: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestCategoryThroughWrapping(t *testing.T) {
	err := fmt.Errorf("run: %w", LoadFailed("./pkg", stderrors.New("boom")))
	assert.True(t, IsCategory(err, CategoryLoad))
	assert.False(t, IsCategory(err, CategoryConfig))
	assert.Equal(t, CategoryLoad, GetCategory(err))
	assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
	assert.False(t, IsCategory(nil, CategoryLoad))
}

func TestConstructorsCarryContext(t *testing.T) {
	err := NoSymbol("Missing", "example")
	assert.Equal(t, "Missing", err.Context["symbol"])
	assert.Equal(t, "example", err.Context["package"])
	assert.Equal(t, SeverityFatal, err.Severity)

	v := ValidationFailed("scan.depth", "must be >= 0")
	assert.Equal(t, CategoryValidation, v.Category)
	assert.Contains(t, v.Error(), "scan.depth")

	w := WriteFailed("/tmp/out.txt", stderrors.New("denied"))
	assert.Equal(t, "/tmp/out.txt", w.Context["path"])
	assert.Equal(t, CategoryFileSystem, w.Category)

	assert.Equal(t, CategoryConfig, ConfigNotFound("x.yaml").Category)
}
