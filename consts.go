package main

import "time"

// 文件路径常量
const (
	republicanDataFile = "data/republican_support.json"
	democratDataFile   = "data/democrat_support.json"
	configFile         = "conf/config.yml"
	exportDir          = "exports"
	defaultLogDir      = "logs"
)

// 图表常量
const (
	initialWindowSize  = 5                       // 初始可见柱数
	bandPadding        = 0.1                     // 分类轴内外边距比例
	transitionDuration = 1000 * time.Millisecond // 过渡动画时长
	frameInterval      = time.Second / 30        // 动画帧间隔
	defaultChartWidth  = 600                     // 图表逻辑宽度（像素）
	defaultChartHeight = 400                     // 图表逻辑高度（像素）
	yTickCount         = 10                      // Y 轴刻度数量提示
)

// chartMargin 图表边距（像素）
var chartMargin = Margin{Top: 50, Right: 20, Bottom: 50, Left: 70}

// 挂载点标识
const (
	republicanMount = "#republican-chart"
	democratMount   = "#democrat-chart"
)

// SupportField 支持度字段名，同时也是 JSON 中的键名
type SupportField string

const (
	RepublicanSupport SupportField = "RepublicanSupport"
	DemocratSupport   SupportField = "DemocratSupport"
)

// 语言常量
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// 应用状态常量
type AppState int

const (
	LoadingData AppState = iota
	ChartsViewing
	LoadFailed
)
