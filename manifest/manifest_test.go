package manifest

import (
	"image"
	"path/filepath"
	"strconv"
	"testing"

	"acdclabel/color2index"
	acdctypes "acdclabel/type"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func result(split, name string, pix []uint8, encoded string) acdctypes.LabelResult {
	label := image.NewGray(image.Rect(0, 0, len(pix), 1))
	copy(label.Pix, pix)
	return acdctypes.LabelResult{
		Annotation: acdctypes.Annotation{
			Split:   acdctypes.Split{Dst: split},
			DstPath: filepath.Join("out", split, name),
		},
		Label:   label,
		Encoded: []byte(encoded),
	}
}

func TestManifestSortedAndWritten(t *testing.T) {
	m := New(color2index.ACDCPalette())
	require.NoError(t, m.Add(result("val", "b.png", []uint8{0, 3}, "bb")))
	require.NoError(t, m.Add(result("train", "z.png", []uint8{1, 1, 2}, "zz")))
	require.NoError(t, m.Add(result("train", "a.png", []uint8{0}, "aa")))

	entries := m.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "a.png", entries[0].Name)
	require.Equal(t, "z.png", entries[1].Name)
	require.Equal(t, "val", entries[2].Split)
	require.Equal(t, []int{0, 2, 1, 0}, entries[1].ClassCounts)
	require.Equal(t, 3, entries[1].Width)
	require.Len(t, entries[2].Digest, 16)
	require.NotEqual(t, entries[0].Digest, entries[1].Digest)

	path := filepath.Join(t.TempDir(), "sub", "manifest.json")
	require.NoError(t, m.Write(path))
	back, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, entries, back)
}

func TestManifestDigestMatchesBytes(t *testing.T) {
	m := New(color2index.ACDCPalette())
	require.NoError(t, m.Add(result("train", "a.png", []uint8{0}, "payload")))
	want := xxhash.Sum64String("payload")
	got, err := strconv.ParseUint(m.Entries()[0].Digest, 16, 64)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestManifestEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, New(color2index.ACDCPalette()).Write(path))
	back, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, back)
}
