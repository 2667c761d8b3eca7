package seeder

import (
	"strings"

	"playground-seed/internal/models"
)

// 地砖网格：4 行 x 7 列，自 (0.374, 0.552) 起每格偏移 0.0305
// x 取 i+j，y 取 (4-i)+j，形成错位排列
const (
	TileRows      = 4
	TileColumns   = 7
	tileStartX    = 0.374
	tileStartY    = 0.552
	tileSeparator = 0.0305
)

// 元素上的预设标记
const (
	TileMarker       = "tile"
	CampfireMarker   = "campfire"
	FountainMarker   = "fountain"
	ToggleableMarker = "toggleable"
)

var tileFrames = []string{
	"tiles/blue1.svg",
	"tiles/blue2.svg",
	"tiles/blue3.svg",
	"tiles/blue4.svg",
	"tiles/green1.svg",
	"tiles/green2.svg",
	"tiles/pink1.svg",
	"tiles/pink2.svg",
	"tiles/pink3.svg",
	"tiles/pink4.svg",
	"tiles/yellow1.svg",
}

var campfireFrames = []string{
	"campfire/campfire1.svg",
	"campfire/campfire2.svg",
	"campfire/campfire3.svg",
	"campfire/campfire4.svg",
	"campfire/campfire5.svg",
}

var fountainFrames = []string{
	"fountain1.svg",
	"fountain2.svg",
	"fountain3.svg",
}

// 可切换元素的两态图片
var toggleablePaths = map[string]string{
	"street_lamp.svg":    "street_lamp.svg,street_lamp_off.svg",
	"bar_closed.svg":     "bar_closed.svg,bar_open.svg",
	"flashlight_off.svg": "flashlight_off.svg,flashlight_on.svg",
}

// TileChangingPaths 地砖循环使用的图片列表
func TileChangingPaths() string {
	return strings.Join(tileFrames, ",")
}

// GenerateTiles 生成地砖标记，行优先
func GenerateTiles() []models.Attributes {
	tiles := make([]models.Attributes, TileRows*TileColumns)
	for i := 0; i < TileRows; i++ {
		for j := 0; j < TileColumns; j++ {
			tiles[i*TileColumns+j] = models.Attributes{
				"x":        tileStartX + float64(i+j)*tileSeparator,
				"y":        tileStartY + float64((TileRows-i)+j)*tileSeparator,
				TileMarker: true,
			}
		}
	}
	return tiles
}

// ExpandPresets 按标记填充预设属性，返回新的属性表，不修改入参
func ExpandPresets(attrs models.Attributes) models.Attributes {
	out := attrs.Clone()

	if out.Has(TileMarker) {
		delete(out, TileMarker)
		out["width"] = 0.052
		out["path"] = tileFrames[0]
		out["changingImagePath"] = true
		out["changingPaths"] = TileChangingPaths()
		out["changingInterval"] = 2000
		out["changingRandomly"] = true
	}

	if out.Has(CampfireMarker) {
		delete(out, CampfireMarker)
		out["width"] = 0.0253
		out["path"] = campfireFrames[0]
		out["changingImagePath"] = true
		out["changingPaths"] = strings.Join(campfireFrames, ",")
		out["changingInterval"] = 250
		out["changingRandomly"] = false
	}

	if out.Has(FountainMarker) {
		delete(out, FountainMarker)
		out["path"] = fountainFrames[0]
		out["changingImagePath"] = true
		out["changingPaths"] = strings.Join(fountainFrames, ",")
		out["changingInterval"] = 1000
		out["changingRandomly"] = false
	}

	if out.Has(ToggleableMarker) {
		if path, ok := out["path"].(string); ok {
			if states, ok := toggleablePaths[path]; ok {
				out["path"] = states
			}
		}
		out["state"] = 0
	}

	return out
}
