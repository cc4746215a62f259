package acdctypes

import "image"

// Color 表示一个 RGB 颜色三元组
type Color struct {
	R, G, B uint8
}

// PaletteEntry 表示调色板中的一项：类别编号、名称和对应颜色
type PaletteEntry struct {
	Index uint8
	Name  string
	Color Color
}

// Palette 是有序的调色板，颜色与编号一一对应
type Palette []PaletteEntry

// Split 表示数据集的一个划分，输入目录名与输出目录名不同
type Split struct {
	Src string // 如 "training"
	Dst string // 如 "train"
}

// Annotation 表示待转换的一张标注图
type Annotation struct {
	Split   Split
	SrcPath string
	DstPath string
}

// LabelResult 表示一张已写出的类别图
type LabelResult struct {
	Annotation Annotation
	Label      *image.Gray
	Encoded    []byte // 写入磁盘的 PNG 字节
}

// LayerSVG 表示单个类别的轮廓 SVG
type LayerSVG struct {
	ClassIndex uint8
	ClassName  string
	SVGData    string
}

// ClassOutline 是 JSON 输出中单个类别的路径数据
type ClassOutline struct {
	Index    uint8  `json:"index"`
	Name     string `json:"name"`
	PathData string `json:"pathdata"`
}

// OutlineData 封装一张类别图的轮廓输出
type OutlineData struct {
	Name    string         `json:"name"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	ViewBox string         `json:"viewBox"`
	Classes []ClassOutline `json:"classes"`
}
