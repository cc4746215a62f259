package main

import (
	"context"
	"log"
	"path/filepath"

	"acdclabel/ann2label"
	"acdclabel/color2index"
	"acdclabel/index2svg"
	"acdclabel/manifest"
	"acdclabel/svg2json"
	acdctypes "acdclabel/type"
)

type config struct {
	srcDir       string
	outDir       string
	workers      int
	outlineDir   string
	manifestPath string
}

func processACDC(ctx context.Context, cfg config) error {
	log.Printf("Processing ACDC annotations from %s...", cfg.srcDir)

	pal := color2index.ACDCPalette()
	var mf *manifest.Manifest
	if cfg.manifestPath != "" {
		mf = manifest.New(pal)
	}

	onResult := func(res acdctypes.LabelResult) error {
		if cfg.outlineDir != "" {
			if err := writeOutline(cfg.outlineDir, res, pal); err != nil {
				return err
			}
		}
		if mf != nil {
			return mf.Add(res)
		}
		return nil
	}

	summary, err := ann2label.ProcessAnnotations(ctx, ann2label.Options{
		SrcDir:   cfg.srcDir,
		OutDir:   cfg.outDir,
		Palette:  pal,
		Workers:  cfg.workers,
		Progress: logProgress,
		OnResult: onResult,
	})
	if err != nil {
		return err
	}

	if mf != nil {
		if err := mf.Write(cfg.manifestPath); err != nil {
			return err
		}
		log.Printf("Manifest written to %s", cfg.manifestPath)
	}
	log.Printf("Converted %d train and %d val annotations", summary["train"], summary["val"])
	log.Println("Conversion complete! Output saved to:", cfg.outDir)
	return nil
}

func logProgress(split string, done, total int) {
	if done == 0 {
		log.Printf("Converting %d annotations into %s/", total, split)
		return
	}
	log.Printf("[%s] %d/%d", split, done, total)
}

func writeOutline(dir string, res acdctypes.LabelResult, pal acdctypes.Palette) error {
	layers, err := index2svg.ConvertToSVG(res.Label, pal)
	if err != nil {
		return err
	}
	b := res.Label.Bounds()
	data, err := svg2json.ParseOutline(filepath.Base(res.Annotation.DstPath), b.Dx(), b.Dy(), layers)
	if err != nil {
		return err
	}
	return svg2json.WriteOutline(filepath.Join(dir, res.Annotation.Split.Dst), data)
}
