package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainName(t *testing.T) {
	name, err := terrainName("north ridge", "survey.csv")
	require.NoError(t, err)
	assert.Equal(t, "north ridge", name)

	name, err = terrainName("", "route_07.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "route_07", name)

	name, err = terrainName("  padded  ", "x.csv")
	require.NoError(t, err)
	assert.Equal(t, "padded", name)

	// File name sans extension still has to pass validation.
	_, err = terrainName("", "....csv")
	assert.Error(t, err)

	_, err = terrainName("../etc/passwd", "x.csv")
	assert.Error(t, err)

	_, err = terrainName("-leading-dash", "x.csv")
	assert.Error(t, err)
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, ".csv", fileExt("terrain.CSV"))
	assert.Equal(t, ".xlsx", fileExt("dir/terrain.XLSX"))
	assert.Equal(t, "", fileExt("noext"))
}
