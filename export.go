package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
)

var errUnsupportedFormat = errors.New("unsupported snapshot format")

// SnapshotOptions 图表快照导出参数
type SnapshotOptions struct {
	Path   string     // 输出文件
	Format string     // "svg" 或 "png"，为空时按扩展名推断
	Frame  ChartFrame // 要绘制的画面
	Title  string
	Color  namedColor
}

// SaveChartSnapshot 将图表画面保存为 SVG 或 PNG
// 先写入临时文件再重命名
func SaveChartSnapshot(opts SnapshotOptions) error {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Path)), ".")
	}

	var buf bytes.Buffer
	switch format {
	case "svg":
		writeSVG(&buf, opts)
	case "png":
		if err := writePNG(&buf, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}

	if dir := filepath.Dir(opts.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}

	tempPath := opts.Path + ".tmp"
	if err := os.WriteFile(tempPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tempPath, opts.Path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("write snapshot: %w", err)
	}

	logInfo("log.export.saved", opts.Path)
	return nil
}

func px(v float64) int { return int(math.Round(v)) }

// writeSVG 结构：平移后的绘图区分组，内含两个坐标轴分组和每根柱形一个 rect
func writeSVG(w io.Writer, opts SnapshotOptions) {
	f := opts.Frame
	canvas := svg.New(w)
	canvas.Start(px(f.Width), px(f.Height))
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, px(f.Width), px(f.Height), "fill:#ffffff")

	canvas.Gtransform(fmt.Sprintf("translate(%d, %d)", px(f.Margin.Left), px(f.Margin.Top)))

	// X 轴
	canvas.Gtransform(fmt.Sprintf("translate(0, %d)", px(f.InnerHeight)))
	canvas.Line(0, 0, px(f.InnerWidth), 0, "stroke:#000000")
	for _, t := range f.XTicks {
		canvas.Line(px(t.Pos), 0, px(t.Pos), 6, "stroke:#000000")
		canvas.Text(px(t.Pos), 18, t.Label, "font-size:10px;font-family:sans-serif;text-anchor:middle")
	}
	canvas.Gend()

	// Y 轴
	canvas.Gtransform("translate(0, 0)")
	canvas.Line(0, 0, 0, px(f.InnerHeight), "stroke:#000000")
	for _, t := range f.YTicks {
		canvas.Line(-6, px(t.Pos), 0, px(t.Pos), "stroke:#000000")
		canvas.Text(-9, px(t.Pos)+3, t.Label, "font-size:10px;font-family:sans-serif;text-anchor:end")
	}
	canvas.Gend()

	barStyle := "fill:" + opts.Color.hex
	for _, b := range f.Bars {
		g := b.Geometry
		canvas.Rect(px(g.X), px(g.Y), px(g.Width), px(g.Height), barStyle)
	}

	canvas.Gend()
	canvas.End()
}

func writePNG(w io.Writer, opts SnapshotOptions) error {
	f := opts.Frame
	dc := gg.NewContext(px(f.Width), px(f.Height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	ox, oy := f.Margin.Left, f.Margin.Top

	dc.SetHexColor(opts.Color.hex)
	for _, b := range f.Bars {
		g := b.Geometry
		dc.DrawRectangle(ox+g.X, oy+g.Y, g.Width, g.Height)
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(ox, oy+f.InnerHeight, ox+f.InnerWidth, oy+f.InnerHeight)
	dc.DrawLine(ox, oy, ox, oy+f.InnerHeight)
	dc.Stroke()

	for _, t := range f.XTicks {
		dc.DrawLine(ox+t.Pos, oy+f.InnerHeight, ox+t.Pos, oy+f.InnerHeight+6)
		dc.Stroke()
		dc.DrawStringAnchored(t.Label, ox+t.Pos, oy+f.InnerHeight+16, 0.5, 0.5)
	}
	for _, t := range f.YTicks {
		dc.DrawLine(ox-6, oy+t.Pos, ox, oy+t.Pos)
		dc.Stroke()
		dc.DrawStringAnchored(t.Label, ox-9, oy+t.Pos, 1, 0.5)
	}
	if opts.Title != "" {
		dc.DrawStringAnchored(opts.Title, f.Width/2, f.Margin.Top/2, 0.5, 0.5)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// exportPaneSnapshots 为每个面板写入 <dir>/<field>.svg 和 <dir>/<field>.png
func exportPaneSnapshots(dir string, panes []*ChartPane, lang Language) ([]string, error) {
	colors := NewColorUtils()
	var written []string
	for _, pane := range panes {
		frame := pane.controller.Chart().TargetFrame()
		for _, ext := range []string{"svg", "png"} {
			path := filepath.Join(dir, fmt.Sprintf("%s.%s", strings.ToLower(string(pane.source.Field)), ext))
			err := SaveChartSnapshot(SnapshotOptions{
				Path:  path,
				Frame: frame,
				Title: lookupText(lang, pane.source.Name),
				Color: colors.Resolve(pane.color, "white"),
			})
			if err != nil {
				logError("log.export.fail", path, err)
				return written, err
			}
			written = append(written, path)
		}
	}
	return written, nil
}
