package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeConstruction, "factory returned no instance")

	assert.Equal(t, ErrorTypeConstruction, err.Type)
	assert.Equal(t, "construction: factory returned no instance", err.Error())
	require.NotEmpty(t, err.Stack, "expected a captured stack")
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("blueprint missing")
	err := Wrap(cause, ErrorTypeConstruction, "constructing instance")

	assert.Equal(t, "construction: constructing instance: blueprint missing", err.Error())
	assert.True(t, goerrors.Is(err, cause), "wrapped cause must unwrap")
}

func TestWrapNilReturnsNil(t *testing.T) {
	var err *Error = Wrap(nil, ErrorTypeInternal, "nothing happened")
	assert.Nil(t, err)
}

func TestWrapPreservesExistingStack(t *testing.T) {
	inner := New(ErrorTypeValidation, "bad template")
	outer := Wrap(inner, ErrorTypeConfig, "loading pool config")

	assert.Equal(t, inner.Stack, outer.Stack)
	assert.Equal(t, ErrorTypeConfig, outer.Type)
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeConstruction, "constructing instance").
		WithDetail("template", "enemy").
		WithDetail("attempt", 3)

	assert.Equal(t, "enemy", err.Details["template"])
	assert.Equal(t, 3, err.Details["attempt"])
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeNotFound, "template unknown")

	assert.True(t, IsType(err, ErrorTypeNotFound))
	assert.False(t, IsType(err, ErrorTypeInternal))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeNotFound))
}

func TestIsTypeThroughWrapping(t *testing.T) {
	inner := New(ErrorTypeConstruction, "factory failed")
	wrapped := fmt.Errorf("acquire: %w", inner)

	assert.True(t, IsConstructionFailure(wrapped))
}

func TestIsConstructionFailure(t *testing.T) {
	assert.True(t, IsConstructionFailure(New(ErrorTypeConstruction, "nope")))
	assert.False(t, IsConstructionFailure(New(ErrorTypeConfig, "nope")))
	assert.False(t, IsConstructionFailure(nil))
}
