package main

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataThenErrorReader returns its payload together with an error on the
// first read, then EOF.
type dataThenErrorReader struct {
	data string
	err  error
	done bool
}

func (r *dataThenErrorReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	r.done = true
	return copy(p, r.data), r.err
}

// zeroThenDataReader yields (0, nil) once before delivering its payload.
type zeroThenDataReader struct {
	data  string
	calls int
}

func (r *zeroThenDataReader) Read(p []byte) (int, error) {
	r.calls++
	if r.calls == 1 {
		return 0, nil
	}
	if r.data == "" {
		return 0, io.EOF
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReaderFeederReportsErrorWithFinalBytes(t *testing.T) {
	boom := errors.New("boom")
	var readErr error
	feed := readerFeeder(&dataThenErrorReader{data: "ab", err: boom}, 8, &readErr)

	assert.Equal(t, "ab", feed(), "bytes delivered alongside the error must not be lost")
	require.ErrorIs(t, readErr, boom)
	assert.Equal(t, "", feed())
}

func TestReaderFeederRetriesZeroNilRead(t *testing.T) {
	var readErr error
	feed := readerFeeder(&zeroThenDataReader{data: "ab"}, 8, &readErr)

	assert.Equal(t, "ab", feed(), "(0, nil) must not be treated as end of input")
	assert.Equal(t, "", feed())
	require.NoError(t, readErr)
}

func TestReaderFeederPlainEOF(t *testing.T) {
	var readErr error
	feed := readerFeeder(&dataThenErrorReader{data: "ab", err: nil}, 8, &readErr)

	assert.Equal(t, "ab", feed())
	assert.Equal(t, "", feed())
	require.NoError(t, readErr)
}
