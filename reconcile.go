package main

import "fmt"

// Reconciliation 新旧两组柱形按分类键比较的结果
type Reconciliation struct {
	Entered  []string // 新出现的键（按新顺序）
	Retained []string // 两边都有的键（按新顺序）
	Exited   []string // 已移除的键（按旧顺序）
}

// Changed 是否有柱形进入或退出
func (r Reconciliation) Changed() bool {
	return len(r.Entered) > 0 || len(r.Exited) > 0
}

// reconcile 计算 enter / update / exit 三个集合
func reconcile(oldKeys, newKeys []string) Reconciliation {
	oldSet := make(map[string]bool, len(oldKeys))
	for _, k := range oldKeys {
		oldSet[k] = true
	}
	newSet := make(map[string]bool, len(newKeys))

	var r Reconciliation
	for _, k := range newKeys {
		newSet[k] = true
		if oldSet[k] {
			r.Retained = append(r.Retained, k)
		} else {
			r.Entered = append(r.Entered, k)
		}
	}
	for _, k := range oldKeys {
		if !newSet[k] {
			r.Exited = append(r.Exited, k)
		}
	}
	return r
}

// barIDs 为窗口中的每条记录生成唯一标识
// 州代码重复时，第二次及之后出现的记录追加序号
func barIDs(window []Record) []string {
	seen := make(map[string]int, len(window))
	ids := make([]string, len(window))
	for i, rec := range window {
		seen[rec.StatePO]++
		if n := seen[rec.StatePO]; n > 1 {
			ids[i] = fmt.Sprintf("%s#%d", rec.StatePO, n)
		} else {
			ids[i] = rec.StatePO
		}
	}
	return ids
}
