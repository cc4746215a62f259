package index2svg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"acdclabel/color2index"
	acdctypes "acdclabel/type"

	"github.com/gotranspile/gotrace"
)

// ClassMask 生成某一类别的黑白掩码图：黑=该类别，白=其他
func ClassMask(label *image.Gray, index uint8) (*image.Gray, int) {
	bounds := label.Bounds()
	mask := image.NewGray(bounds)
	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if label.GrayAt(x, y).Y == index {
				mask.SetGray(x, y, color.Gray{Y: 0})
				count++
			} else {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return mask, count
}

// ConvertToSVG 对类别图中出现的每个非背景类别做轮廓追踪，返回每类一个 SVG 图层
func ConvertToSVG(label *image.Gray, pal acdctypes.Palette) ([]acdctypes.LayerSVG, error) {
	var layers []acdctypes.LayerSVG
	for _, e := range pal {
		if e.Index == 0 {
			continue
		}
		svgStr, ok, err := traceClass(label, e.Index)
		if err != nil {
			return nil, fmt.Errorf("trace class %d: %w", e.Index, err)
		}
		if !ok {
			continue
		}
		layers = append(layers, acdctypes.LayerSVG{
			ClassIndex: e.Index,
			ClassName:  color2index.ClassName(pal, e.Index),
			SVGData:    svgStr,
		})
	}
	return layers, nil
}

// traceClass 追踪某一类别的轮廓，类别不存在时 ok 为 false
func traceClass(label *image.Gray, index uint8) (svgStr string, ok bool, err error) {
	mask, n := ClassMask(label, index)
	if n == 0 {
		return "", false, nil
	}

	paths, err := gotrace.Trace(gotrace.BitmapFromGray(mask, nil), nil)
	if err != nil {
		return "", false, err
	}
	if len(paths) == 0 {
		return "", false, nil
	}

	// 画布取类别图的尺寸，轮廓坐标与像素一一对应
	size := label.Bounds().Size()
	var buf bytes.Buffer
	if err := gotrace.Render("svg", nil, &buf, paths, size.X, size.Y); err != nil {
		return "", false, err
	}
	return buf.String(), true, nil
}
