package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	id, err := uuid.Parse(NewUUIDGenerator().Generate())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestUUIDGenerator_Resolve(t *testing.T) {
	g := NewUUIDGenerator()

	for _, keep := range []string{"trace-7", "my_custom.trace-id", strings.Repeat("a", maxTraceIDLength)} {
		assert.Equal(t, keep, g.Resolve(keep))
	}

	for _, replace := range []string{"", "bad id", "line\nbreak", `{"json":1}`, strings.Repeat("a", maxTraceIDLength+1)} {
		got := g.Resolve(replace)
		assert.NotEqual(t, replace, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "input %q", replace)
	}
}
