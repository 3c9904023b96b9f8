package main

import (
	"net/http"
	"time"
)

// Record 单个州的支持度数据
type Record struct {
	StatePO string  // 州邮政代码，如 "PA"
	Value   float64 // 支持度数值
	Defined bool    // JSON 中该字段是否存在且为数字
}

// Dataset 从单个 JSON 源加载的记录序列，加载后不再修改
type Dataset struct {
	Source  string
	Field   SupportField
	Records []Record
}

// DataSource 数据源描述
type DataSource struct {
	Name     string       // 显示名称的 i18n 键
	Location string       // 本地路径或 http(s) URL
	Field    SupportField // 排序使用的数值字段
	Mount    string       // 图表挂载点
}

// Margin 图表边距
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// BarGeometry 柱形在绘图区内的几何位置（y 轴向下）
type BarGeometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Config 系统配置结构
type Config struct {
	System SystemConfig `yaml:"system"` // 系统设置
	Data   DataConfig   `yaml:"data"`   // 数据源设置
	Chart  ChartConfig  `yaml:"chart"`  // 图表设置
}

// SystemConfig 系统设置
type SystemConfig struct {
	Language  string `yaml:"language"`   // 默认语言 "zh" 或 "en"
	DebugMode bool   `yaml:"debug_mode"` // 调试模式开关
	LogDir    string `yaml:"log_dir"`    // 日志目录
}

// DataConfig 数据源设置
type DataConfig struct {
	Republican string `yaml:"republican"` // 共和党数据源
	Democrat   string `yaml:"democrat"`   // 民主党数据源
}

// ChartConfig 图表设置
type ChartConfig struct {
	Width           int    `yaml:"width"`            // 逻辑宽度（像素）
	Height          int    `yaml:"height"`           // 逻辑高度（像素）
	InitialBars     int    `yaml:"initial_bars"`     // 初始可见柱数
	TransitionMS    int    `yaml:"transition_ms"`    // 过渡动画时长（毫秒）
	RepublicanColor string `yaml:"republican_color"` // 共和党柱形颜色
	DemocratColor   string `yaml:"democrat_color"`   // 民主党柱形颜色
}

// TextMap 文本映射结构（用于i18n）
type TextMap map[string]string

// ChartPane 一个数据集对应的图表面板
type ChartPane struct {
	source     DataSource
	controller *WindowController
	color      string // 颜色名称或十六进制值
}

// Model 应用程序主模型
type Model struct {
	state          AppState
	language       Language
	config         Config
	sources        []DataSource
	client         *http.Client
	message        string
	loadErr        error
	debugMode      bool
	debugLogs      []string // 调试日志存储
	debugScrollPos int      // debug日志滚动位置

	panes     []*ChartPane
	focus     int  // 当前焦点面板
	animating bool // 是否有动画帧在调度中

	// 排名面板
	showRanking      bool
	rankingCursor    int
	rankingScrollPos int

	termWidth  int
	termHeight int
}

// frameMsg 动画帧消息
type frameMsg time.Time

// datasetsLoadedMsg 数据集加载完成消息
type datasetsLoadedMsg struct {
	datasets []Dataset
	err      error
}
