package main

import (
	"errors"
	"time"
)

var (
	errChartNotRendered     = errors.New("chart has not been rendered")
	errChartAlreadyRendered = errors.New("chart has already been rendered")
)

// ============================================================================
// 图表结构
// ============================================================================

// Chart 单个柱状图的场景状态
// 保存每根柱形当前的过渡，Frame 按时间采样得到可绘制的画面
type Chart struct {
	mount    string
	field    SupportField
	width    float64
	height   float64
	margin   Margin
	duration time.Duration

	rendered bool
	window   []Record
	x        BandScale
	y        LinearScale

	bars  map[string]*barState
	order []string // 绘制顺序：当前窗口在前，退出中的柱形在后
	yMax  scalarTween
}

type barState struct {
	id      string
	record  Record
	tr      Transition
	exiting bool
}

// ChartFrame 某一时刻的图表画面
type ChartFrame struct {
	Mount       string
	Field       SupportField
	Width       float64
	Height      float64
	Margin      Margin
	InnerWidth  float64
	InnerHeight float64
	YMax        float64
	Bars        []BarFrame
	XTicks      []AxisTick
	YTicks      []AxisTick
}

// BarFrame 画面中的一根柱形
type BarFrame struct {
	ID       string
	Key      string
	Value    float64
	Geometry BarGeometry
	Exiting  bool
}

// AxisTick 坐标轴刻度，Pos 为绘图区内的像素位置
type AxisTick struct {
	Label string
	Value float64
	Pos   float64
}

// newChart 创建图表，width/height 为挂载点的像素尺寸
func newChart(mount string, field SupportField, width, height int, duration time.Duration) *Chart {
	return &Chart{
		mount:    mount,
		field:    field,
		width:    float64(width),
		height:   float64(height),
		margin:   chartMargin,
		duration: duration,
		bars:     make(map[string]*barState),
	}
}

func (c *Chart) innerWidth() float64  { return c.width - c.margin.Left - c.margin.Right }
func (c *Chart) innerHeight() float64 { return c.height - c.margin.Top - c.margin.Bottom }

// scalesFor 根据窗口计算两个比例尺
func (c *Chart) scalesFor(window []Record) (BandScale, LinearScale) {
	keys := make([]string, len(window))
	maxValue := 0.0
	for i, rec := range window {
		keys[i] = rec.StatePO
		if i == 0 || rec.Value > maxValue {
			maxValue = rec.Value
		}
	}
	x := newBandScale(keys, 0, c.innerWidth(), bandPadding)
	y := newLinearScale(0, maxValue, c.innerHeight(), 0)
	return x, y
}

// target 计算记录在给定比例尺下的目标几何位置
func (c *Chart) target(rec Record, x BandScale, y LinearScale) BarGeometry {
	px, _ := x.Position(rec.StatePO)
	top := y.Scale(rec.Value)
	if d0, d1 := y.Domain(); d0 == d1 {
		// 窗口内全部为 0 时柱高为 0
		top = c.innerHeight()
	}
	return BarGeometry{
		X:      px,
		Y:      top,
		Width:  x.Bandwidth(),
		Height: c.innerHeight() - top,
	}
}

// ============================================================================
// 首次绘制
// ============================================================================

// Render 首次绘制，每个图表只能调用一次，且必须在 Update 之前
func (c *Chart) Render(window []Record) error {
	if c.rendered {
		return errChartAlreadyRendered
	}

	c.window = append([]Record(nil), window...)
	c.x, c.y = c.scalesFor(c.window)
	_, maxValue := c.y.Domain()
	c.yMax = scalarTween{from: maxValue, to: maxValue}

	ids := barIDs(c.window)
	c.order = ids
	for i, rec := range c.window {
		c.bars[ids[i]] = &barState{
			id:     ids[i],
			record: rec,
			tr:     settledTransition(c.target(rec, c.x, c.y)),
		}
	}
	c.rendered = true

	logDebug("log.chart.render", c.mount, len(c.window))
	return nil
}

// ============================================================================
// 更新
// ============================================================================

// Update 以新窗口重新计算比例尺，并对柱形执行 enter / update / exit 过渡
// 过渡进行中再次调用时，从当前插值位置重新开始
func (c *Chart) Update(window []Record, now time.Time) (Reconciliation, error) {
	if !c.rendered {
		return Reconciliation{}, errChartNotRendered
	}

	newWindow := append([]Record(nil), window...)
	x, y := c.scalesFor(newWindow)
	// 进入和退出的柱形都以绘图区底部为基线
	baseline := c.innerHeight()

	newIDs := barIDs(newWindow)
	diff := reconcile(c.order, newIDs)

	records := make(map[string]Record, len(newWindow))
	for i, rec := range newWindow {
		records[newIDs[i]] = rec
	}

	for _, id := range diff.Retained {
		bar := c.bars[id]
		bar.record = records[id]
		bar.exiting = false
		bar.tr = Transition{
			From:     bar.tr.At(now),
			To:       c.target(bar.record, x, y),
			Start:    now,
			Duration: c.duration,
		}
	}

	for _, id := range diff.Entered {
		rec := records[id]
		to := c.target(rec, x, y)
		from := BarGeometry{X: to.X, Y: baseline, Width: to.Width, Height: 0}
		c.bars[id] = &barState{
			id:     id,
			record: rec,
			tr:     Transition{From: from, To: to, Start: now, Duration: c.duration},
		}
	}

	for _, id := range diff.Exited {
		bar := c.bars[id]
		cur := bar.tr.At(now)
		bar.exiting = true
		bar.tr = Transition{
			From:     cur,
			To:       BarGeometry{X: cur.X, Y: baseline, Width: cur.Width, Height: 0},
			Start:    now,
			Duration: c.duration,
		}
	}

	_, newMax := y.Domain()
	c.yMax = scalarTween{from: c.yMax.At(now), to: newMax, start: now, duration: c.duration}

	c.window = newWindow
	c.x, c.y = x, y
	c.order = append(newIDs, diff.Exited...)

	logDebug("log.chart.update", c.mount, len(diff.Entered), len(diff.Retained), len(diff.Exited))
	return diff, nil
}

// ============================================================================
// 画面采样
// ============================================================================

// Settled 所有过渡是否已结束；顺带移除已完成退出的柱形
func (c *Chart) Settled(now time.Time) bool {
	settled := c.yMax.Done(now)
	kept := c.order[:0]
	for _, id := range c.order {
		bar := c.bars[id]
		done := bar.tr.Done(now)
		if bar.exiting && done {
			delete(c.bars, id)
			continue
		}
		if !done {
			settled = false
		}
		kept = append(kept, id)
	}
	c.order = kept
	return settled
}

// Frame 返回 now 时刻的画面
func (c *Chart) Frame(now time.Time) ChartFrame {
	frame := c.baseFrame(c.yMax.At(now))
	for _, id := range c.order {
		bar := c.bars[id]
		frame.Bars = append(frame.Bars, BarFrame{
			ID:       id,
			Key:      bar.record.StatePO,
			Value:    bar.record.Value,
			Geometry: bar.tr.At(now),
			Exiting:  bar.exiting,
		})
	}
	frame.XTicks = xTicksFor(frame.Bars)
	return frame
}

// TargetFrame 返回所有过渡结束后的画面（不含退出中的柱形）
func (c *Chart) TargetFrame() ChartFrame {
	frame := c.baseFrame(c.yMax.to)
	for _, id := range c.order {
		bar := c.bars[id]
		if bar.exiting {
			continue
		}
		frame.Bars = append(frame.Bars, BarFrame{
			ID:       id,
			Key:      bar.record.StatePO,
			Value:    bar.record.Value,
			Geometry: bar.tr.To,
		})
	}
	frame.XTicks = xTicksFor(frame.Bars)
	return frame
}

// Window 返回当前目标窗口的副本
func (c *Chart) Window() []Record {
	return append([]Record(nil), c.window...)
}

func (c *Chart) baseFrame(yMax float64) ChartFrame {
	frame := ChartFrame{
		Mount:       c.mount,
		Field:       c.field,
		Width:       c.width,
		Height:      c.height,
		Margin:      c.margin,
		InnerWidth:  c.innerWidth(),
		InnerHeight: c.innerHeight(),
		YMax:        yMax,
	}

	y := newLinearScale(0, yMax, frame.InnerHeight, 0)
	step := y.TickStep(yTickCount)
	for _, v := range y.Ticks(yTickCount) {
		frame.YTicks = append(frame.YTicks, AxisTick{
			Label: formatTick(v, step),
			Value: v,
			Pos:   y.Scale(v),
		})
	}
	return frame
}

// xTicksFor X 轴刻度跟随未退出柱形的中心
func xTicksFor(bars []BarFrame) []AxisTick {
	var ticks []AxisTick
	seen := make(map[string]bool, len(bars))
	for _, b := range bars {
		if b.Exiting || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		ticks = append(ticks, AxisTick{
			Label: b.Key,
			Value: b.Value,
			Pos:   b.Geometry.X + b.Geometry.Width/2,
		})
	}
	return ticks
}
