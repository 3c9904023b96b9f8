package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ColumnID - 列的唯一标识符
type ColumnID string

// 排名表列ID常量
const (
	ColCursor  ColumnID = "cursor"
	ColRank    ColumnID = "rank"
	ColState   ColumnID = "state"
	ColSupport ColumnID = "support"
	ColShare   ColumnID = "share"
	ColVisible ColumnID = "visible"
)

// ColumnMetadata - 列的元数据
type ColumnMetadata struct {
	ID      ColumnID   // 列ID
	I18nKey string     // 国际化翻译键
	Align   text.Align // 对齐方式
}

// rankingColumns 排名表的列顺序
var rankingColumns = []ColumnMetadata{
	{ID: ColCursor, I18nKey: "", Align: text.AlignLeft},
	{ID: ColRank, I18nKey: "column.rank", Align: text.AlignRight},
	{ID: ColState, I18nKey: "column.state", Align: text.AlignLeft},
	{ID: ColSupport, I18nKey: "column.support", Align: text.AlignRight},
	{ID: ColShare, I18nKey: "column.share", Align: text.AlignRight},
	{ID: ColVisible, I18nKey: "column.visible", Align: text.AlignCenter},
}

// RankingTable 排名表的数据与显示参数
type RankingTable struct {
	Title     string
	Valid     []Record
	WindowLen int
	Language  Language
	Color     namedColor
	Cursor    int // -1 表示不显示光标
	Start     int // 显示范围 [Start, End)
	End       int
}

// generateRankingHeader 生成表头
func generateRankingHeader(lang Language) table.Row {
	header := make(table.Row, len(rankingColumns))
	for i, col := range rankingColumns {
		if col.I18nKey != "" {
			header[i] = lookupText(lang, col.I18nKey)
		}
	}
	return header
}

// generateRankingRow 生成一行数据
func generateRankingRow(rt RankingTable, index int, windowTotal float64) table.Row {
	rec := rt.Valid[index]
	visible := index < rt.WindowLen
	row := make(table.Row, len(rankingColumns))
	for i, col := range rankingColumns {
		switch col.ID {
		case ColCursor:
			if index == rt.Cursor {
				row[i] = "►"
			} else {
				row[i] = ""
			}
		case ColRank:
			row[i] = index + 1
		case ColState:
			if visible {
				row[i] = rt.Color.pretty.Sprint(rec.StatePO)
			} else {
				row[i] = rec.StatePO
			}
		case ColSupport:
			row[i] = formatSupport(rec.Value, rt.Language)
		case ColShare:
			if visible {
				row[i] = formatShare(rec.Value, windowTotal, rt.Language)
			} else {
				row[i] = "-"
			}
		case ColVisible:
			if visible {
				row[i] = "●"
			} else {
				row[i] = ""
			}
		}
	}
	return row
}

// renderRankingTable 渲染排名表，窗口内的记录高亮显示
func renderRankingTable(rt RankingTable) string {
	if rt.End <= 0 || rt.End > len(rt.Valid) {
		rt.End = len(rt.Valid)
	}
	if rt.Start < 0 {
		rt.Start = 0
	}

	windowTotal := 0.0
	for i := 0; i < rt.WindowLen && i < len(rt.Valid); i++ {
		windowTotal += rt.Valid[i].Value
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if rt.Title != "" {
		t.SetTitle(rt.Title)
	}

	configs := make([]table.ColumnConfig, len(rankingColumns))
	for i, col := range rankingColumns {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: col.Align}
	}
	t.SetColumnConfigs(configs)

	t.AppendHeader(generateRankingHeader(rt.Language))
	for i := rt.Start; i < rt.End; i++ {
		t.AppendRow(generateRankingRow(rt, i, windowTotal))
	}
	t.AppendFooter(table.Row{"", "", "", "", "",
		fmt.Sprintf("%s %s", lookupText(rt.Language, "column.visible"), formatCount(rt.WindowLen, len(rt.Valid), rt.Language))})

	return t.Render()
}
