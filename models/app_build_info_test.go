package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v0.3.0", "", "9f1c2e")

	assert.Equal(t, "v0.3.0", info.BuildVersion())
	assert.Equal(t, BuildInfoUnknown, info.BuildDate())
	assert.Equal(t, "9f1c2e", info.BuildCommit())

	var buf bytes.Buffer
	n, err := info.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "Build version: v0.3.0\nBuild date: N/A\nBuild commit: 9f1c2e\n", buf.String())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Equal(t, BuildInfoUnknown, info.BuildVersion())
	assert.Equal(t, BuildInfoUnknown, info.BuildDate())
	assert.Equal(t, BuildInfoUnknown, info.BuildCommit())
}
