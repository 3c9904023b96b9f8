package main

// ============================================================================
// 排名面板滚动控制
// ============================================================================

// rankingPageSize 排名面板每页显示行数
func (m *Model) rankingPageSize() int {
	size := m.termHeight/2 - 6
	if size < 5 {
		size = 5
	}
	return size
}

// focusedValid 当前焦点面板的有效记录
func (m *Model) focusedValid() []Record {
	if m.focus < 0 || m.focus >= len(m.panes) {
		return nil
	}
	return m.panes[m.focus].controller.Valid()
}

// scrollRankingUp 光标上移，必要时调整滚动位置
func (m *Model) scrollRankingUp() {
	if m.rankingCursor > 0 {
		m.rankingCursor--
	}
	if m.rankingCursor < m.rankingScrollPos {
		m.rankingScrollPos = m.rankingCursor
	}
}

// scrollRankingDown 光标下移，必要时调整滚动位置
func (m *Model) scrollRankingDown() {
	if m.rankingCursor < len(m.focusedValid())-1 {
		m.rankingCursor++
	}
	if page := m.rankingPageSize(); m.rankingCursor >= m.rankingScrollPos+page {
		m.rankingScrollPos = m.rankingCursor - page + 1
	}
}

// resetRankingScroll 切换焦点后回到顶部
func (m *Model) resetRankingScroll() {
	m.rankingCursor = 0
	m.rankingScrollPos = 0
}

// rankingRange 返回当前可见的行范围 [start, end)
func (m *Model) rankingRange() (int, int) {
	total := len(m.focusedValid())
	start := m.rankingScrollPos
	if start > total {
		start = total
	}
	end := start + m.rankingPageSize()
	if end > total {
		end = total
	}
	return start, end
}
