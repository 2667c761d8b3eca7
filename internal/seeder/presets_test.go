package seeder

import (
	"encoding/json"
	"strings"
	"testing"

	"playground-seed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTiles_Grid(t *testing.T) {
	tiles := GenerateTiles()
	require.Len(t, tiles, 28)

	for idx, tile := range tiles {
		i, j := idx/TileColumns, idx%TileColumns
		assert.Equal(t, true, tile[TileMarker], idx)
		assert.InDelta(t, 0.374+float64(i+j)*0.0305, tile["x"], 1e-9, idx)
		assert.InDelta(t, 0.552+float64(4-i+j)*0.0305, tile["y"], 1e-9, idx)
	}

	// x 随行递增，y 随行递减
	assert.InDelta(t, 0.374, tiles[0]["x"], 1e-9)
	assert.InDelta(t, 0.674, tiles[0]["y"], 1e-9)
	assert.InDelta(t, 0.4045, tiles[7]["x"], 1e-9)
	assert.InDelta(t, 0.6435, tiles[7]["y"], 1e-9)
	assert.InDelta(t, 0.6485, tiles[27]["x"], 1e-9)
	assert.InDelta(t, 0.7655, tiles[27]["y"], 1e-9)
}

func TestExpandPresets_Tile(t *testing.T) {
	in := models.Attributes{"x": json.Number("0.1"), "y": json.Number("0.2"), TileMarker: true}
	out := ExpandPresets(in)

	assert.NotContains(t, out, TileMarker)
	assert.Equal(t, 0.052, out["width"])
	assert.Equal(t, "tiles/blue1.svg", out["path"])
	assert.Equal(t, 2000, out["changingInterval"])
	assert.Equal(t, true, out["changingImagePath"])
	assert.Equal(t, true, out["changingRandomly"])
	assert.Equal(t, json.Number("0.1"), out["x"])

	paths := strings.Split(out["changingPaths"].(string), ",")
	require.Len(t, paths, 11)
	assert.Equal(t, "tiles/blue1.svg", paths[0])
	assert.Equal(t, "tiles/yellow1.svg", paths[10])

	// 入参不被修改
	assert.Contains(t, in, TileMarker)
	assert.NotContains(t, in, "width")
}

func TestExpandPresets_TileMarkerAnyValue(t *testing.T) {
	out := ExpandPresets(models.Attributes{"x": 0, "y": 0, TileMarker: false})
	assert.NotContains(t, out, TileMarker)
	assert.Equal(t, "tiles/blue1.svg", out["path"])
}

func TestExpandPresets_Campfire(t *testing.T) {
	out := ExpandPresets(models.Attributes{"x": 0.5, "y": 0.5, CampfireMarker: true})

	assert.NotContains(t, out, CampfireMarker)
	assert.Equal(t, 0.0253, out["width"])
	assert.Equal(t, "campfire/campfire1.svg", out["path"])
	assert.Equal(t, 250, out["changingInterval"])
	assert.Equal(t, false, out["changingRandomly"])
	assert.Len(t, strings.Split(out["changingPaths"].(string), ","), 5)
}

func TestExpandPresets_Fountain(t *testing.T) {
	out := ExpandPresets(models.Attributes{"x": 0.5, "y": 0.5, "width": 0.2, FountainMarker: true})

	assert.NotContains(t, out, FountainMarker)
	assert.Equal(t, 0.2, out["width"])
	assert.Equal(t, "fountain1.svg", out["path"])
	assert.Equal(t, "fountain1.svg,fountain2.svg,fountain3.svg", out["changingPaths"])
	assert.Equal(t, 1000, out["changingInterval"])
}

func TestExpandPresets_Toggleable(t *testing.T) {
	out := ExpandPresets(models.Attributes{"x": 0.5, "y": 0.5, "path": "street_lamp.svg", ToggleableMarker: true})
	assert.Equal(t, "street_lamp.svg,street_lamp_off.svg", out["path"])
	assert.Equal(t, 0, out["state"])
	assert.Contains(t, out, ToggleableMarker)

	out = ExpandPresets(models.Attributes{"x": 0.5, "y": 0.5, "path": "door.svg", ToggleableMarker: true})
	assert.Equal(t, "door.svg", out["path"])
	assert.Equal(t, 0, out["state"])
}

func TestExpandPresets_PlainElementUnchanged(t *testing.T) {
	in := models.Attributes{"x": 0.2, "y": 0.2, "width": 0.1, "path": "lamp.svg"}
	assert.Equal(t, in, ExpandPresets(in))
}
