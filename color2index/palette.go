package color2index

import (
	"fmt"

	acdctypes "acdclabel/type"

	"github.com/samber/lo"
)

// ACDCPalette 返回 ACDC 心脏 MRI 数据集的固定调色板
func ACDCPalette() acdctypes.Palette {
	return acdctypes.Palette{
		{Index: 0, Name: "Background", Color: acdctypes.Color{R: 0, G: 0, B: 0}},
		{Index: 1, Name: "LV", Color: acdctypes.Color{R: 171, G: 171, B: 171}},
		{Index: 2, Name: "MYO", Color: acdctypes.Color{R: 114, G: 114, B: 114}},
		{Index: 3, Name: "RV", Color: acdctypes.Color{R: 57, G: 57, B: 57}},
	}
}

// Validate 检查调色板颜色和编号均不重复
func Validate(pal acdctypes.Palette) error {
	if len(pal) == 0 {
		return fmt.Errorf("empty palette")
	}
	colors := lo.Map(pal, func(e acdctypes.PaletteEntry, _ int) acdctypes.Color { return e.Color })
	if dup := lo.FindDuplicates(colors); len(dup) > 0 {
		return fmt.Errorf("palette color %v used by more than one class", dup[0])
	}
	indexes := lo.Map(pal, func(e acdctypes.PaletteEntry, _ int) uint8 { return e.Index })
	if dup := lo.FindDuplicates(indexes); len(dup) > 0 {
		return fmt.Errorf("palette index %d assigned to more than one color", dup[0])
	}
	return nil
}

// Lookup 线性查找颜色对应的类别编号
func Lookup(pal acdctypes.Palette, c acdctypes.Color) (uint8, bool) {
	for _, e := range pal {
		if e.Color == c {
			return e.Index, true
		}
	}
	return 0, false
}

// ClassName 返回类别编号对应的名称，找不到时返回空串
func ClassName(pal acdctypes.Palette, index uint8) string {
	for _, e := range pal {
		if e.Index == index {
			return e.Name
		}
	}
	return ""
}

// NumClasses 返回类别图中可能出现的值的个数（最大编号 + 1）
func NumClasses(pal acdctypes.Palette) int {
	if len(pal) == 0 {
		return 1
	}
	return int(lo.MaxBy(pal, func(a, b acdctypes.PaletteEntry) bool { return a.Index > b.Index }).Index) + 1
}
