package main

import (
	"context"
	"log"

	"github.com/spf13/pflag"
)

const defaultAnnDir = "data/acdc/ann_dir"

func main() {
	var cfg config
	pflag.StringVar(&cfg.srcDir, "src-dir", defaultAnnDir, "ACDC 标注目录，包含 training/ 和 validation/")
	pflag.StringVar(&cfg.outDir, "out-dir", defaultAnnDir, "输出目录，结果写入 train/ 和 val/")
	pflag.IntVar(&cfg.workers, "workers", 1, "并行转换的最大协程数")
	pflag.StringVar(&cfg.outlineDir, "outline-dir", "", "若设置，为每张类别图输出各类别轮廓 JSON")
	pflag.StringVar(&cfg.manifestPath, "manifest", "", "若设置，写出所有输出文件的清单 JSON")
	help := pflag.BoolP("help", "h", false, "显示帮助信息")
	pflag.Parse()
	if *help {
		pflag.Usage()
		return
	}

	if err := processACDC(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
}
