package ann2label

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"acdclabel/color2index"
	acdctypes "acdclabel/type"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// Pattern 是标注图文件名的匹配规则
const Pattern = "*.png"

// Splits 输入划分目录与输出划分目录的对应关系
var Splits = []acdctypes.Split{
	{Src: "training", Dst: "train"},
	{Src: "validation", Dst: "val"},
}

// ProgressFunc 每处理完一个文件调用一次；每个划分开始前以 done=0 调用一次
type ProgressFunc func(split string, done, total int)

// Options 批量转换参数
type Options struct {
	SrcDir  string
	OutDir  string
	Palette acdctypes.Palette

	// Workers 并行转换的最大协程数，<=1 时串行
	Workers int
	// Strict 为 true 时输入划分目录不存在视为错误
	Strict bool

	Progress ProgressFunc
	OnResult func(acdctypes.LabelResult) error
}

// Summary 记录每个输出划分写出的文件数
type Summary map[string]int

// ProcessAnnotations 转换 SrcDir 下 training/validation 中的全部标注图
func ProcessAnnotations(ctx context.Context, opts Options) (Summary, error) {
	if err := color2index.Validate(opts.Palette); err != nil {
		return nil, err
	}
	for _, split := range Splits {
		if err := os.MkdirAll(filepath.Join(opts.OutDir, split.Dst), 0o755); err != nil {
			return nil, err
		}
	}

	summary := Summary{}
	for _, split := range Splits {
		anns, err := ListAnnotations(opts.SrcDir, opts.OutDir, split, opts.Strict)
		if err != nil {
			return summary, err
		}
		n, err := convertSplit(ctx, split, anns, opts)
		summary[split.Dst] = n
		if err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// ListAnnotations 列出一个划分目录下的标注图（不递归，按文件名排序）
func ListAnnotations(srcDir, outDir string, split acdctypes.Split, strict bool) ([]acdctypes.Annotation, error) {
	dir := filepath.Join(srcDir, split.Src)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) && !strict {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var anns []acdctypes.Annotation
	for _, e := range entries {
		// 与 shell 通配一致，隐藏文件不参与匹配
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if ok, _ := filepath.Match(Pattern, e.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		// 符号链接按其目标判断
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		anns = append(anns, acdctypes.Annotation{
			Split:   split,
			SrcPath: path,
			DstPath: filepath.Join(outDir, split.Dst, e.Name()),
		})
	}
	return anns, nil
}

func convertSplit(ctx context.Context, split acdctypes.Split, anns []acdctypes.Annotation, opts Options) (int, error) {
	var mu sync.Mutex
	done := 0
	report := func(res acdctypes.LabelResult) error {
		mu.Lock()
		defer mu.Unlock()
		if opts.OnResult != nil {
			if err := opts.OnResult(res); err != nil {
				return err
			}
		}
		done++
		if opts.Progress != nil {
			opts.Progress(split.Dst, done, len(anns))
		}
		return nil
	}

	if opts.Progress != nil {
		opts.Progress(split.Dst, 0, len(anns))
	}

	g, gctx := errgroup.WithContext(ctx)
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for _, ann := range anns {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := ConvertFile(ann, opts.Palette)
			if err != nil {
				return err
			}
			return report(res)
		})
	}
	if err := g.Wait(); err != nil {
		return done, err
	}
	// errgroup 的 ctx 在 Wait 后总会被取消，这里看调用方的 ctx
	return done, ctx.Err()
}

// ConvertFile 读取一张 RGB 标注图，映射为类别图并以 PNG 写出
func ConvertFile(ann acdctypes.Annotation, pal acdctypes.Palette) (acdctypes.LabelResult, error) {
	img, err := imaging.Open(ann.SrcPath)
	if err != nil {
		return acdctypes.LabelResult{}, fmt.Errorf("decode %s: %w", ann.SrcPath, err)
	}
	label := color2index.Convert(color2index.FromImage(img), pal)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, label, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return acdctypes.LabelResult{}, fmt.Errorf("encode %s: %w", ann.DstPath, err)
	}
	if err := os.WriteFile(ann.DstPath, buf.Bytes(), 0o644); err != nil {
		return acdctypes.LabelResult{}, err
	}

	return acdctypes.LabelResult{Annotation: ann, Label: label, Encoded: buf.Bytes()}, nil
}
