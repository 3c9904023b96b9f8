package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	configPath := flag.String("config", configFile, "path to the YAML config file")
	republican := flag.String("republican", "", "Republican support JSON (path or URL)")
	democrat := flag.String("democrat", "", "Democrat support JSON (path or URL)")
	exportTo := flag.String("export", "", "write SVG/PNG snapshots to this directory and exit")
	printTable := flag.Bool("table", false, "print ranking tables and exit")
	lang := flag.String("lang", "", "interface language (en or zh)")
	debug := flag.Bool("debug", false, "enable debug logging and the debug panel")
	flag.Parse()

	if err := loadI18nFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	config := loadConfig(*configPath)
	if *republican != "" {
		config.Data.Republican = *republican
	}
	if *democrat != "" {
		config.Data.Democrat = *democrat
	}
	if *lang != "" {
		config.System.Language = string(parseLanguage(*lang))
	}
	if *debug {
		config.System.DebugMode = true
	}

	if err := InitLogger(config.System.LogDir, parseLogLevel(config.System.DebugMode)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer func() {
		if globalLogger != nil {
			globalLogger.Sync()
		}
	}()

	m := newModel(config, &http.Client{})
	logInfo("log.app.start", m.language)

	if *printTable || *exportTo != "" {
		if err := m.runBatch(*printTable, *exportTo); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", m.getText("loadError"), err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logErrorDirect("program exited: %v", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// newModel 根据配置创建模型
func newModel(config Config, client *http.Client) *Model {
	m := &Model{
		state:     LoadingData,
		language:  parseLanguage(config.System.Language),
		config:    config,
		sources:   dataSources(config),
		client:    client,
		debugMode: config.System.DebugMode,
	}
	setLanguage(m.language)
	return m
}

// buildPanes 加载完成后为每个数据集创建控制器并完成首次绘制
func (m *Model) buildPanes(datasets []Dataset) error {
	duration := time.Duration(m.config.Chart.TransitionMS) * time.Millisecond
	colors := []string{m.config.Chart.RepublicanColor, m.config.Chart.DemocratColor}

	panes := make([]*ChartPane, 0, len(datasets))
	for i, ds := range datasets {
		src := m.sources[i]
		valid := validSubset(ds)
		chart := newChart(src.Mount, src.Field, m.config.Chart.Width, m.config.Chart.Height, duration)
		wc := newWindowController(string(src.Field), valid, m.config.Chart.InitialBars, chart)
		if err := wc.Render(); err != nil {
			return fmt.Errorf("render %s: %w", src.Mount, err)
		}
		logInfo("log.app.datasetReady", src.Field, len(ds.Records), len(valid), wc.Len())

		color := ""
		if i < len(colors) {
			color = colors[i]
		}
		panes = append(panes, &ChartPane{source: src, controller: wc, color: color})
	}
	m.panes = panes
	return nil
}

// runBatch 非交互模式：打印排名表和/或导出快照
func (m *Model) runBatch(printTable bool, exportTo string) error {
	datasets, err := loadAllDatasets(context.Background(), m.client, m.sources)
	if err != nil {
		return err
	}
	if err := m.buildPanes(datasets); err != nil {
		return err
	}

	if printTable {
		colors := NewColorUtils()
		for _, pane := range m.panes {
			fmt.Println(renderRankingTable(RankingTable{
				Title:     m.getText(pane.source.Name),
				Valid:     pane.controller.Valid(),
				WindowLen: pane.controller.Len(),
				Language:  m.language,
				Color:     colors.Resolve(pane.color, "white"),
				Cursor:    -1,
			}))
		}
	}

	if exportTo != "" {
		written, err := exportPaneSnapshots(exportTo, m.panes, m.language)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Println(path)
		}
	}
	return nil
}

// ============================================================================
// bubbletea 接口
// ============================================================================

func (m *Model) Init() tea.Cmd {
	return m.loadDatasetsCmd()
}

// loadDatasetsCmd 并发加载全部数据集，全部完成后再开始绘制
func (m *Model) loadDatasetsCmd() tea.Cmd {
	sources := m.sources
	client := m.client
	return func() tea.Msg {
		datasets, err := loadAllDatasets(context.Background(), client, sources)
		return datasetsLoadedMsg{datasets: datasets, err: err}
	}
}

// frameCmd 调度下一帧动画
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case datasetsLoadedMsg:
		if msg.err != nil {
			m.state = LoadFailed
			m.loadErr = msg.err
			logError("log.app.loadFail", msg.err)
			return m, nil
		}
		if err := m.buildPanes(msg.datasets); err != nil {
			m.state = LoadFailed
			m.loadErr = err
			logError("log.app.loadFail", err)
			return m, nil
		}
		m.state = ChartsViewing
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if m.allSettled(now) {
			m.animating = false
			return m, nil
		}
		return m, frameCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// allSettled 所有图表的过渡是否都已结束
func (m *Model) allSettled(now time.Time) bool {
	settled := true
	for _, pane := range m.panes {
		if !pane.controller.Chart().Settled(now) {
			settled = false
		}
	}
	return settled
}

// startAnimation 确保动画帧在调度中
func (m *Model) startAnimation() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frameCmd()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		logInfo("log.app.quit")
		return m, tea.Quit
	case "l":
		if m.language == English {
			m.language = Chinese
		} else {
			m.language = English
		}
		setLanguage(m.language)
		m.logUserAction("debug.action.language", m.language)
		return m, nil
	case "v":
		m.debugMode = !m.debugMode
		return m, nil
	}

	if m.debugMode {
		switch key {
		case "pgup":
			m.scrollDebugUp()
			return m, nil
		case "pgdown":
			m.scrollDebugDown()
			return m, nil
		case "home":
			m.scrollDebugToTop()
			return m, nil
		case "end":
			m.scrollDebugToBottom()
			return m, nil
		}
	}

	if m.state != ChartsViewing || len(m.panes) == 0 {
		return m, nil
	}

	switch key {
	case "tab":
		m.focus = (m.focus + 1) % len(m.panes)
		m.resetRankingScroll()
		m.logUserAction("debug.action.focus", m.getText(m.panes[m.focus].source.Name))
		return m, nil
	case "+", "=", "up":
		return m, m.grow(m.focus)
	case "-", "_", "down":
		return m, m.shrink(m.focus)
	case "r":
		return m, m.grow(0)
	case "R":
		return m, m.shrink(0)
	case "d":
		return m, m.grow(1)
	case "D":
		return m, m.shrink(1)
	case "t":
		m.showRanking = !m.showRanking
		m.resetRankingScroll()
		return m, nil
	case "j":
		m.scrollRankingDown()
		return m, nil
	case "k":
		m.scrollRankingUp()
		return m, nil
	case "e":
		written, err := exportPaneSnapshots(exportDir, m.panes, m.language)
		if err != nil {
			m.message = fmt.Sprintf("%s: %v", m.getText("exportFail"), err)
		} else {
			m.message = fmt.Sprintf(m.getText("exportDone"), len(written), exportDir)
		}
		m.logUserAction("debug.action.export", len(written))
		return m, nil
	}
	return m, nil
}

// grow 对第 i 个面板执行"增加一根柱"
func (m *Model) grow(i int) tea.Cmd {
	if i < 0 || i >= len(m.panes) {
		return nil
	}
	pane := m.panes[i]
	if !pane.controller.Grow(time.Now()) {
		return nil
	}
	m.logUserAction("debug.action.grow", m.getText(pane.source.Name), pane.controller.Len())
	return m.startAnimation()
}

// shrink 对第 i 个面板执行"减少一根柱"
func (m *Model) shrink(i int) tea.Cmd {
	if i < 0 || i >= len(m.panes) {
		return nil
	}
	pane := m.panes[i]
	if !pane.controller.Shrink(time.Now()) {
		return nil
	}
	m.logUserAction("debug.action.shrink", m.getText(pane.source.Name), pane.controller.Len())
	return m.startAnimation()
}

// ============================================================================
// 视图
// ============================================================================

func (m *Model) View() string {
	var b strings.Builder

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	b.WriteString(header.Render("📊 " + m.getText("appTitle")))
	b.WriteString("\n\n")

	switch m.state {
	case LoadingData:
		b.WriteString(m.getText("loading"))
	case LoadFailed:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render(fmt.Sprintf("%s: %v", m.getText("loadError"), m.loadErr)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.getText("help.quit")))
	case ChartsViewing:
		b.WriteString(m.viewCharts(time.Now()))
		b.WriteString("\n")
		if m.showRanking {
			b.WriteString(m.viewRanking())
			b.WriteString("\n")
		}
		if m.message != "" {
			b.WriteString(m.message)
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.getText("help.charts")))
	}

	b.WriteString(m.renderDebugPanel())
	return b.String()
}

// viewCharts 终端够宽时左右排列两个图表，否则上下排列
func (m *Model) viewCharts(now time.Time) string {
	width := m.termWidth
	if width <= 0 {
		width = 100
	}
	height := m.termHeight
	if height <= 0 {
		height = 30
	}

	sideBySide := width >= 2*(minChartCols+12)
	cols, rows := width, height/2-2
	if sideBySide {
		cols, rows = width/2, height-8
	}
	if m.showRanking || m.debugMode {
		rows -= rows / 3
	}

	views := make([]string, len(m.panes))
	for i, pane := range m.panes {
		views[i] = m.viewChartPane(pane, cols, rows, i == m.focus, now)
	}
	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// viewRanking 焦点面板的排名表
func (m *Model) viewRanking() string {
	if m.focus >= len(m.panes) {
		return ""
	}
	pane := m.panes[m.focus]
	start, end := m.rankingRange()
	return renderRankingTable(RankingTable{
		Title:     m.getText(pane.source.Name),
		Valid:     pane.controller.Valid(),
		WindowLen: pane.controller.Len(),
		Language:  m.language,
		Color:     NewColorUtils().Resolve(pane.color, "white"),
		Cursor:    m.rankingCursor,
		Start:     start,
		End:       end,
	})
}
