//go:build notypek

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_typeKNotCompiled(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"temp", "-t", "K", "1"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "not compiled in")
}
