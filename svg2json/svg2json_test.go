package svg2json

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	acdctypes "acdclabel/type"

	"github.com/stretchr/testify/require"
)

const sampleSVG = `<?xml version="1.0" standalone="no"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="16" height="16" viewBox="0 0 16 16">
<g>
<path d="M4 4 L12 4 L12 12 L4 12 Z"/>
</g>
<path d=" M1 1 L2 2 Z "/>
</svg>`

func TestExtractPaths(t *testing.T) {
	paths, err := extractPaths(sampleSVG)
	require.NoError(t, err)
	require.Equal(t, []string{"M4 4 L12 4 L12 12 L4 12 Z", "M1 1 L2 2 Z"}, paths)

	_, err = extractPaths("<svg><path d='x'>")
	require.Error(t, err)
}

func TestParseOutlineNoLayers(t *testing.T) {
	data, err := ParseOutline("a.png", 3, 2, nil)
	require.NoError(t, err)
	require.Equal(t, "0 0 3 2", data.ViewBox)
	require.Empty(t, data.Classes)
}

func TestParseOutlineAndWrite(t *testing.T) {
	layers := []acdctypes.LayerSVG{
		{ClassIndex: 1, ClassName: "LV", SVGData: sampleSVG},
	}
	data, err := ParseOutline("patient001_frame01.png", 16, 16, layers)
	require.NoError(t, err)
	require.Equal(t, "0 0 16 16", data.ViewBox)
	require.Len(t, data.Classes, 1)
	require.Equal(t, "LV", data.Classes[0].Name)
	require.Equal(t, "M4 4 L12 4 L12 12 L4 12 Z M1 1 L2 2 Z", data.Classes[0].PathData)

	dir := filepath.Join(t.TempDir(), "train")
	require.NoError(t, WriteOutline(dir, data))

	b, err := os.ReadFile(filepath.Join(dir, "patient001_frame01.json"))
	require.NoError(t, err)
	var back acdctypes.OutlineData
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, data, back)
}

func TestParseOutlineKeepsTracedViewBox(t *testing.T) {
	scaled := `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="16" height="16" viewBox="0 0 160 160"><path d="M40 40 L120 40 Z"/></svg>`
	data, err := ParseOutline("a.png", 16, 16, []acdctypes.LayerSVG{
		{ClassIndex: 2, ClassName: "MYO", SVGData: scaled},
	})
	require.NoError(t, err)
	require.Equal(t, "0 0 160 160", data.ViewBox)
	require.Equal(t, 16, data.Width)
}
