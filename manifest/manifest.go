package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"acdclabel/color2index"
	acdctypes "acdclabel/type"

	"github.com/cespare/xxhash/v2"
)

// Entry 记录一张已写出的类别图
type Entry struct {
	Split       string `json:"split"`
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ClassCounts []int  `json:"classCounts"`
	Digest      string `json:"digest"`
}

// Manifest 收集所有输出文件的信息，可并发调用 Add
type Manifest struct {
	mu         sync.Mutex
	numClasses int
	entries    []Entry
}

func New(pal acdctypes.Palette) *Manifest {
	return &Manifest{numClasses: color2index.NumClasses(pal)}
}

// Add 记录一个转换结果，digest 为写入字节的 xxhash64
func (m *Manifest) Add(res acdctypes.LabelResult) error {
	b := res.Label.Bounds()
	e := Entry{
		Split:       res.Annotation.Split.Dst,
		Name:        filepath.Base(res.Annotation.DstPath),
		Width:       b.Dx(),
		Height:      b.Dy(),
		ClassCounts: color2index.ClassCounts(res.Label, m.numClasses),
		Digest:      fmt.Sprintf("%016x", xxhash.Sum64(res.Encoded)),
	}
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
	return nil
}

// Entries 返回按 (split, name) 排序后的副本
func (m *Manifest) Entries() []Entry {
	m.mu.Lock()
	out := append([]Entry(nil), m.entries...)
	m.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Split != out[j].Split {
			return out[i].Split < out[j].Split
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Write 将清单以 JSON 写到 path
func (m *Manifest) Write(path string) error {
	entries := m.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// Load 读取 Write 写出的清单
func Load(path string) ([]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return entries, nil
}
