package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Config 配置文件持久化
// ============================================================================

// getDefaultConfig 获取默认配置
func getDefaultConfig() Config {
	return Config{
		System: SystemConfig{
			Language:  "en",          // 默认英文
			DebugMode: false,         // 调试模式关闭
			LogDir:    defaultLogDir, // 日志目录
		},
		Data: DataConfig{
			Republican: republicanDataFile,
			Democrat:   democratDataFile,
		},
		Chart: ChartConfig{
			Width:           defaultChartWidth,
			Height:          defaultChartHeight,
			InitialBars:     initialWindowSize,
			TransitionMS:    int(transitionDuration.Milliseconds()),
			RepublicanColor: "red",
			DemocratColor:   "blue",
		},
	}
}

// loadConfig 加载配置文件；文件不存在时写入默认配置
func loadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		config := getDefaultConfig()
		if err := saveConfig(path, config); err != nil {
			logWarn("log.config.saveFail", path, err)
		}
		return config
	}

	config := getDefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		// 配置文件格式错误，使用默认配置
		logWarn("log.config.parseFail", path, err)
		return getDefaultConfig()
	}

	return validateConfig(config)
}

// validateConfig 修正不合理的配置值
func validateConfig(config Config) Config {
	defaults := getDefaultConfig()

	// 绘图区必须有正的宽高
	minWidth := int(chartMargin.Left+chartMargin.Right) + 1
	minHeight := int(chartMargin.Top+chartMargin.Bottom) + 1
	if config.Chart.Width < minWidth {
		config.Chart.Width = defaults.Chart.Width
	}
	if config.Chart.Height < minHeight {
		config.Chart.Height = defaults.Chart.Height
	}
	if config.Chart.InitialBars < 0 {
		config.Chart.InitialBars = defaults.Chart.InitialBars
	}
	if config.Chart.TransitionMS < 0 {
		config.Chart.TransitionMS = defaults.Chart.TransitionMS
	}
	if config.Chart.RepublicanColor == "" {
		config.Chart.RepublicanColor = defaults.Chart.RepublicanColor
	}
	if config.Chart.DemocratColor == "" {
		config.Chart.DemocratColor = defaults.Chart.DemocratColor
	}

	if config.Data.Republican == "" {
		config.Data.Republican = defaults.Data.Republican
	}
	if config.Data.Democrat == "" {
		config.Data.Democrat = defaults.Data.Democrat
	}

	if config.System.LogDir == "" {
		config.System.LogDir = defaults.System.LogDir
	}
	if lang := Language(config.System.Language); lang != Chinese && lang != English {
		config.System.Language = defaults.System.Language
	}

	return config
}

// saveConfig 保存配置文件
func saveConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// dataSources 根据配置生成两个数据源
func dataSources(config Config) []DataSource {
	return []DataSource{
		{
			Name:     "chart.republican",
			Location: config.Data.Republican,
			Field:    RepublicanSupport,
			Mount:    republicanMount,
		},
		{
			Name:     "chart.democrat",
			Location: config.Data.Democrat,
			Field:    DemocratSupport,
			Mount:    democratMount,
		},
	}
}
