package main

import "sort"

// RecordSorter 记录排序接口
type RecordSorter interface {
	SortDescending(records []Record)
}

// DefaultSorter 默认排序实现（使用Go标准库的sort包）
type DefaultSorter struct{}

// NewDefaultSorter 创建默认排序器
func NewDefaultSorter() *DefaultSorter {
	return &DefaultSorter{}
}

// SortDescending 按支持度降序排序；数值相同的记录保持原有相对顺序
func (s *DefaultSorter) SortDescending(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Value > records[j].Value
	})
}

// ============================================================================
// 过滤 / 排序 / 截取
// ============================================================================

// validSubset 去掉未定义支持度的记录并降序排序，不修改 ds
func validSubset(ds Dataset) []Record {
	return validSubsetWith(ds, NewDefaultSorter())
}

func validSubsetWith(ds Dataset, sorter RecordSorter) []Record {
	valid := make([]Record, 0, len(ds.Records))
	for _, rec := range ds.Records {
		if rec.Defined {
			valid = append(valid, rec)
		}
	}
	sorter.SortDescending(valid)
	return valid
}

// initialWindow 取前 min(size, len(valid)) 条记录的副本
func initialWindow(valid []Record, size int) []Record {
	if size < 0 {
		size = 0
	}
	if size > len(valid) {
		size = len(valid)
	}
	return append([]Record(nil), valid[:size]...)
}
