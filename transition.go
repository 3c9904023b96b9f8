package main

import "time"

// Transition 一段从 From 到 To 的柱形几何动画
type Transition struct {
	From     BarGeometry
	To       BarGeometry
	Start    time.Time
	Duration time.Duration
}

// settledTransition 返回一个已经处于终点的过渡（用于首次绘制）
func settledTransition(g BarGeometry) Transition {
	return Transition{From: g, To: g}
}

// progress 返回 [0,1] 区间内的已缓动进度
func (tr Transition) progress(now time.Time) float64 {
	if tr.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(tr.Start)) / float64(tr.Duration)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return easeCubicInOut(t)
}

// At 返回 now 时刻的几何位置
func (tr Transition) At(now time.Time) BarGeometry {
	return tr.From.lerp(tr.To, tr.progress(now))
}

// Done 过渡是否已结束
func (tr Transition) Done(now time.Time) bool {
	return tr.Duration <= 0 || !now.Before(tr.Start.Add(tr.Duration))
}

// scalarTween 单个数值的过渡，用于坐标轴定义域
type scalarTween struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

func (s scalarTween) At(now time.Time) float64 {
	tr := Transition{Start: s.start, Duration: s.duration}
	return lerp(s.from, s.to, tr.progress(now))
}

func (s scalarTween) Done(now time.Time) bool {
	return s.duration <= 0 || !now.Before(s.start.Add(s.duration))
}

// easeCubicInOut 三次缓入缓出
func easeCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func (g BarGeometry) lerp(to BarGeometry, t float64) BarGeometry {
	return BarGeometry{
		X:      lerp(g.X, to.X, t),
		Y:      lerp(g.Y, to.Y, t),
		Width:  lerp(g.Width, to.Width, t),
		Height: lerp(g.Height, to.Height, t),
	}
}
