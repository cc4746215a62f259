package color2index

import (
	"image"

	acdctypes "acdclabel/type"

	"github.com/disintegration/imaging"
)

// FromImage 将任意解码后的图像转为 RGB 顺序的 NRGBA，原点移到 (0,0)
func FromImage(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}

// Convert 将 RGB 标注图按调色板映射为单通道类别图。
// 不在调色板中的颜色保持为 0，alpha 通道被忽略，输入不会被修改。
func Convert(img *image.NRGBA, pal acdctypes.Palette) *image.Gray {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x := 0; x < w; x++ {
			c := acdctypes.Color{R: src[x*4], G: src[x*4+1], B: src[x*4+2]}
			if idx, ok := Lookup(pal, c); ok {
				dst[x] = idx
			}
		}
	}
	return out
}

// ClassCounts 统计类别图中每个值出现的像素数，超出 n 的值忽略
func ClassCounts(label *image.Gray, n int) []int {
	counts := make([]int, n)
	bounds := label.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := int(label.GrayAt(x, y).Y)
			if v < n {
				counts[v]++
			}
		}
	}
	return counts
}
