package main

import (
	"math"
	"strconv"
)

// ============================================================================
// 分类比例尺（band scale）
// ============================================================================

// BandScale 将离散的分类键映射到等宽的像素区间
type BandScale struct {
	domain    []string
	index     map[string]int
	start     float64
	step      float64
	bandwidth float64
}

// newBandScale 创建分类比例尺
// 内外边距均为 padding，对齐方式居中；重复的键只保留第一次出现的位置
func newBandScale(keys []string, r0, r1, padding float64) BandScale {
	s := BandScale{index: make(map[string]int, len(keys))}
	for _, k := range keys {
		if _, exists := s.index[k]; exists {
			continue
		}
		s.index[k] = len(s.domain)
		s.domain = append(s.domain, k)
	}

	n := float64(len(s.domain))
	s.step = (r1 - r0) / math.Max(1, n-padding+padding*2)
	s.start = r0 + (r1-r0-s.step*(n-padding))*0.5
	s.bandwidth = s.step * (1 - padding)
	return s
}

// Position 返回键对应区间的起始位置
func (s BandScale) Position(key string) (float64, bool) {
	i, ok := s.index[key]
	if !ok {
		return 0, false
	}
	return s.start + s.step*float64(i), true
}

// Bandwidth 返回每个区间的宽度
func (s BandScale) Bandwidth() float64 { return s.bandwidth }

// Step 返回相邻区间起点之间的距离
func (s BandScale) Step() float64 { return s.step }

// Domain 返回去重后的键序列
func (s BandScale) Domain() []string { return s.domain }

// ============================================================================
// 线性比例尺
// ============================================================================

// LinearScale 连续数值到像素的线性映射
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

func newLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Scale 数值 → 像素；定义域退化时映射到值域中点
func (s LinearScale) Scale(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + (s.r1-s.r0)*t
}

// Domain 返回定义域
func (s LinearScale) Domain() (float64, float64) { return s.d0, s.d1 }

// Ticks 返回约 count 个"整齐"的刻度值
func (s LinearScale) Ticks(count int) []float64 {
	lo, hi := s.d0, s.d1
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []float64{lo}
	}

	inc := tickIncrement(lo, hi, count)
	if inc == 0 || math.IsInf(inc, 0) || math.IsNaN(inc) {
		return nil
	}

	var ticks []float64
	if inc > 0 {
		i0, i1 := math.Ceil(lo/inc), math.Floor(hi/inc)
		for i := i0; i <= i1; i++ {
			ticks = append(ticks, i*inc)
		}
	} else {
		inc = -inc
		i0, i1 := math.Ceil(lo*inc), math.Floor(hi*inc)
		for i := i0; i <= i1; i++ {
			ticks = append(ticks, i/inc)
		}
	}
	return ticks
}

// TickStep 返回 Ticks 使用的刻度间距
func (s LinearScale) TickStep(count int) float64 {
	lo, hi := s.d0, s.d1
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return 0
	}
	inc := tickIncrement(lo, hi, count)
	if inc < 0 {
		return 1 / -inc
	}
	return inc
}

var (
	tickE10 = math.Sqrt(50)
	tickE5  = math.Sqrt(10)
	tickE2  = math.Sqrt(2)
)

// tickIncrement 计算 1、2、5 × 10^n 形式的刻度间距
// 返回负数 -k 表示间距为 1/k，避免小数累积误差
func tickIncrement(start, stop float64, count int) float64 {
	if count <= 0 {
		count = 1
	}
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case err >= tickE10:
		factor = 10
	case err >= tickE5:
		factor = 5
	case err >= tickE2:
		factor = 2
	}

	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// formatTick 按刻度间距决定小数位数
func formatTick(v, step float64) string {
	prec := 0
	if step > 0 && step < 1 {
		prec = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
