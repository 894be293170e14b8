package errors

import (
	"database/sql"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrapKeepsChain(t *testing.T) {
	err := Wrapf(Wrap(io.EOF, "read body"), "upload %s", "12345")

	assert.True(t, Is(err, io.EOF))
	assert.Equal(t, "upload 12345: read body: EOF", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", WithStack(io.EOF)), "TestWrapKeepsChain")
}

func TestIsAny(t *testing.T) {
	err := Wrap(sql.ErrConnDone, "ping")

	assert.True(t, IsAny(err, io.EOF, sql.ErrConnDone))
	assert.False(t, IsAny(err, io.EOF, sql.ErrNoRows))
	assert.False(t, IsAny(err))
}

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: "E1"}, "outer")

	got, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "E1", got.code)

	var target *codedError
	assert.True(t, As(err, &target))

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
	assert.EqualError(t, Errorf("code %d", 7), "code 7")
}
