package header

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindReport),
		WithAPIVersion("v1"),
		WithMetadata("node", "node-1"),
	)

	assert.Equal(t, KindReport, h.Kind)
	assert.Equal(t, "v1", h.APIVersion)
	assert.Equal(t, "node-1", h.Metadata["node"])
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindReport, "v1", "v1.2.3")

	assert.Equal(t, KindReport, h.Kind)
	assert.Equal(t, "v1", h.APIVersion)
	assert.Equal(t, "v1.2.3", h.Metadata["version"])
	assert.NotEmpty(t, h.Metadata["timestamp"])

	_, err := uuid.Parse(h.Metadata["id"])
	require.NoError(t, err, "id must be a valid uuid")
}

func TestInitWithoutVersion(t *testing.T) {
	var h Header
	h.Init(KindDevices, "v1", "")

	_, ok := h.Metadata["version"]
	assert.False(t, ok)
}

func TestKindIsValid(t *testing.T) {
	for _, k := range []Kind{KindReport, KindDevices, KindCPU} {
		assert.True(t, k.IsValid(), "kind %s should be valid", k)
	}

	bogus := Kind("Bogus")
	assert.False(t, bogus.IsValid())
}
