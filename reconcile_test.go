package main

import (
	"testing"
)

// TestReconcile 测试 enter / update / exit 三个集合
func TestReconcile(t *testing.T) {
	tests := []struct {
		desc     string
		oldKeys  []string
		newKeys  []string
		entered  []string
		retained []string
		exited   []string
	}{
		{
			desc:     "增加一根",
			oldKeys:  []string{"PA", "OH", "TX", "FL", "NY"},
			newKeys:  []string{"PA", "OH", "TX", "FL", "NY", "GA"},
			entered:  []string{"GA"},
			retained: []string{"PA", "OH", "TX", "FL", "NY"},
			exited:   []string{},
		},
		{
			desc:     "减少一根",
			oldKeys:  []string{"PA", "OH", "TX"},
			newKeys:  []string{"PA", "OH"},
			entered:  []string{},
			retained: []string{"PA", "OH"},
			exited:   []string{"TX"},
		},
		{
			desc:     "从空开始",
			oldKeys:  []string{},
			newKeys:  []string{"PA"},
			entered:  []string{"PA"},
			retained: []string{},
			exited:   []string{},
		},
		{
			desc:     "完全替换，退出按旧顺序",
			oldKeys:  []string{"NY", "CA"},
			newKeys:  []string{"TX", "FL"},
			entered:  []string{"TX", "FL"},
			retained: []string{},
			exited:   []string{"NY", "CA"},
		},
	}

	for _, tt := range tests {
		r := reconcile(tt.oldKeys, tt.newKeys)
		if !equalStrings(r.Entered, tt.entered) {
			t.Errorf("%s: Entered = %v, expected %v", tt.desc, r.Entered, tt.entered)
		}
		if !equalStrings(r.Retained, tt.retained) {
			t.Errorf("%s: Retained = %v, expected %v", tt.desc, r.Retained, tt.retained)
		}
		if !equalStrings(r.Exited, tt.exited) {
			t.Errorf("%s: Exited = %v, expected %v", tt.desc, r.Exited, tt.exited)
		}
	}

	if reconcile([]string{"PA"}, []string{"PA"}).Changed() {
		t.Errorf("identical key sets reported a change")
	}
}

// TestBarIDs 重复的州代码追加序号
func TestBarIDs(t *testing.T) {
	window := []Record{rec("PA", 10), rec("OH", 8), rec("PA", 7), rec("PA", 1)}
	got := barIDs(window)
	expected := []string{"PA", "OH", "PA#2", "PA#3"}
	if !equalStrings(got, expected) {
		t.Errorf("barIDs() = %v, expected %v", got, expected)
	}
}
