//go:build notypet

package tc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeT_notCompiled(t *testing.T) {
	_, err := Lookup(KindT)
	assert.ErrorIs(t, err, ErrNotCompiled)

	_, err = New(KindT, 0)
	assert.ErrorIs(t, err, ErrNotCompiled)

	assert.NotContains(t, Compiled(), KindT)
}
