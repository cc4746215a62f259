package svg2json

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	acdctypes "acdclabel/type"

	"github.com/rustyoz/svg"
)

// ParseOutline 把一张类别图的各图层 SVG 整理为 OutlineData。
// 路径坐标以 SVG 自身的 viewBox 为准，只有没有图层时才用类别图尺寸。
func ParseOutline(name string, width, height int, layers []acdctypes.LayerSVG) (acdctypes.OutlineData, error) {
	data := acdctypes.OutlineData{
		Name:    name,
		Width:   width,
		Height:  height,
		ViewBox: fmt.Sprintf("0 0 %d %d", width, height),
		Classes: make([]acdctypes.ClassOutline, 0, len(layers)),
	}
	if len(layers) > 0 {
		parsed, err := svg.ParseSvg(layers[0].SVGData, name, 1.0)
		if err != nil {
			return acdctypes.OutlineData{}, fmt.Errorf("parse svg %s: %w", name, err)
		}
		if parsed.ViewBox != "" {
			data.ViewBox = parsed.ViewBox
		}
	}

	for _, layer := range layers {
		paths, err := extractPaths(layer.SVGData)
		if err != nil {
			return acdctypes.OutlineData{}, fmt.Errorf("class %d of %s: %w", layer.ClassIndex, name, err)
		}
		data.Classes = append(data.Classes, acdctypes.ClassOutline{
			Index:    layer.ClassIndex,
			Name:     layer.ClassName,
			PathData: strings.Join(paths, " "),
		})
	}
	return data, nil
}

// WriteOutline 将 OutlineData 以 JSON 写到 dir/<name>.json
func WriteOutline(dir string, data acdctypes.OutlineData) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(data.Name, filepath.Ext(data.Name))
	return os.WriteFile(filepath.Join(dir, base+".json"), b, 0o644)
}

// extractPaths 从 SVG 字符串中提取所有 <path> 的 d 属性，包括 <g> 内嵌套的
func extractPaths(doc string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))
	var paths []string
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return paths, nil
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "path" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local == "d" {
				paths = append(paths, strings.TrimSpace(attr.Value))
			}
		}
	}
}
