package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

// 终端图表最小尺寸（字符）
const (
	minChartCols = 30
	minChartRows = 10
)

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

// ============================================================================
// 图表画面 → 终端字符
// ============================================================================

// renderChartFrame 将画面绘制到 cols×rows 的字符区域
// 以绘图区像素为坐标系，柱形用竖直的 Braille 线填充
func renderChartFrame(frame ChartFrame, cols, rows int, barStyle lipgloss.Style) string {
	if cols < minChartCols || rows < minChartRows {
		return ""
	}
	if frame.InnerWidth <= 0 || frame.InnerHeight <= 0 {
		return ""
	}

	yStep := newLinearScale(0, frame.YMax, frame.InnerHeight, 0).TickStep(yTickCount)
	yLabelFormatter := func(index int, value float64) string {
		v := frame.YMax * value / frame.InnerHeight
		return formatTick(v, yStep)
	}

	ticks := frame.XTicks
	xLabelFormatter := func(index int, value float64) string {
		for _, b := range frame.Bars {
			if b.Exiting {
				continue
			}
			center := b.Geometry.X + b.Geometry.Width/2
			halfStep := b.Geometry.Width / (1 - bandPadding) / 2
			if math.Abs(value-center) <= halfStep {
				return b.Key
			}
		}
		return ""
	}

	xSteps := len(ticks)
	if xSteps < 1 {
		xSteps = 1
	}

	lc := linechart.New(cols, rows,
		0, frame.InnerWidth,
		0, frame.InnerHeight,
		linechart.WithXYSteps(xSteps, 4),
		linechart.WithXLabelFormatter(xLabelFormatter),
		linechart.WithYLabelFormatter(yLabelFormatter),
		linechart.WithStyles(axisStyle, labelStyle, barStyle),
	)

	// Braille 每个字符 2 列点阵，按半个字符宽度步进即可填满柱形
	dx := frame.InnerWidth / float64(cols*2)
	exitStyle := barStyle.Faint(true)
	for _, bar := range frame.Bars {
		g := bar.Geometry
		if g.Height < 0.5 || g.Width <= 0 {
			continue
		}
		style := barStyle
		if bar.Exiting {
			style = exitStyle
		}
		// 画面坐标 y 向下，图表坐标 y 向上
		bottom := frame.InnerHeight - (g.Y + g.Height)
		top := frame.InnerHeight - g.Y
		for x := g.X; x <= g.X+g.Width; x += dx {
			lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: x, Y: bottom},
				canvas.Float64Point{X: x, Y: top},
				style,
			)
		}
	}

	lc.DrawXYAxisAndLabel()
	return lc.View()
}

// ============================================================================
// 面板渲染
// ============================================================================

// viewChartPane 渲染一个完整的图表面板（标题 + 图表 + 摘要）
func (m *Model) viewChartPane(pane *ChartPane, cols, rows int, focused bool, now time.Time) string {
	var b strings.Builder
	colors := NewColorUtils()
	barColor := colors.Resolve(pane.color, "white")

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(barColor.terminal)
	title := fmt.Sprintf("%s %s  %s",
		m.getText(pane.source.Name),
		pane.source.Mount,
		formatCount(pane.controller.Len(), len(pane.controller.Valid()), m.language))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	frame := pane.controller.Chart().Frame(now)
	if len(pane.controller.Valid()) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.getText("noValidRecords")))
		b.WriteString("\n")
	}

	chart := renderChartFrame(frame, cols-2, rows-4, colors.BarStyle(pane.color, "white"))
	if chart == "" {
		b.WriteString(m.getText("terminalTooSmall"))
	} else {
		b.WriteString(chart)
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.windowSummary(pane)))

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Width(cols - 2)
	if focused {
		border = border.BorderForeground(barColor.terminal)
	}
	return border.Render(b.String())
}

// windowSummary 当前窗口内各州的数值
func (m *Model) windowSummary(pane *ChartPane) string {
	window := pane.controller.Window()
	if len(window) == 0 {
		return m.getText("windowEmpty")
	}
	parts := make([]string, len(window))
	for i, rec := range window {
		parts[i] = fmt.Sprintf("%s %s", rec.StatePO, formatSupport(rec.Value, m.language))
	}
	return strings.Join(parts, " · ")
}
