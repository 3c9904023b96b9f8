package main

import "time"

// WindowController 持有某个数据集的可见窗口，是唯一允许修改窗口的地方
type WindowController struct {
	name   string
	valid  []Record
	window []Record
	chart  *Chart
}

// newWindowController 以 valid 的前 initial 条记录作为初始窗口
func newWindowController(name string, valid []Record, initial int, chart *Chart) *WindowController {
	return &WindowController{
		name:   name,
		valid:  valid,
		window: initialWindow(valid, initial),
		chart:  chart,
	}
}

// Render 首次绘制图表
func (wc *WindowController) Render() error {
	return wc.chart.Render(wc.window)
}

// Grow 追加下一条记录并更新图表；窗口已满时不做任何事
func (wc *WindowController) Grow(now time.Time) bool {
	n := len(wc.window)
	if n >= len(wc.valid) {
		logDebug("log.window.growNoop", wc.name, n)
		return false
	}
	wc.window = append(wc.window, wc.valid[n])
	wc.update(now)
	logInfo("log.window.grow", wc.name, wc.valid[n].StatePO, len(wc.window))
	return true
}

// Shrink 移除最后一条记录并更新图表；窗口为空时不做任何事
func (wc *WindowController) Shrink(now time.Time) bool {
	n := len(wc.window)
	if n == 0 {
		logDebug("log.window.shrinkNoop", wc.name)
		return false
	}
	removed := wc.window[n-1]
	wc.window = wc.window[:n-1]
	wc.update(now)
	logInfo("log.window.shrink", wc.name, removed.StatePO, len(wc.window))
	return true
}

func (wc *WindowController) update(now time.Time) {
	if _, err := wc.chart.Update(wc.window, now); err != nil {
		logError("log.chart.updateFail", wc.name, err)
	}
}

// Window 返回当前窗口的副本
func (wc *WindowController) Window() []Record {
	return append([]Record(nil), wc.window...)
}

// Valid 返回排序后的有效记录
func (wc *WindowController) Valid() []Record { return wc.valid }

// Len 当前窗口长度
func (wc *WindowController) Len() int { return len(wc.window) }

// Chart 返回控制器驱动的图表
func (wc *WindowController) Chart() *Chart { return wc.chart }
