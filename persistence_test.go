package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigWritesDefaults 配置文件不存在时写入默认配置
func TestLoadConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yml")

	config := loadConfig(path)
	if config != getDefaultConfig() {
		t.Errorf("loadConfig() = %+v, expected defaults", config)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}

	again := loadConfig(path)
	if again != config {
		t.Errorf("reloaded config = %+v, expected %+v", again, config)
	}
}

// TestLoadConfigPartial 未写的字段保留默认值
func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "system:\n  language: zh\nchart:\n  width: 800\n  transition_ms: 250\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config := loadConfig(path)
	if config.System.Language != "zh" {
		t.Errorf("Language = %q, expected zh", config.System.Language)
	}
	if config.Chart.Width != 800 || config.Chart.Height != defaultChartHeight {
		t.Errorf("chart size = %dx%d, expected 800x%d", config.Chart.Width, config.Chart.Height, defaultChartHeight)
	}
	if config.Chart.TransitionMS != 250 {
		t.Errorf("TransitionMS = %d, expected 250", config.Chart.TransitionMS)
	}
	if config.Data.Republican != republicanDataFile {
		t.Errorf("Republican = %q, expected default", config.Data.Republican)
	}
}

// TestLoadConfigInvalidYAML 格式错误时回退到默认配置
func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("chart: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if config := loadConfig(path); config != getDefaultConfig() {
		t.Errorf("loadConfig() = %+v, expected defaults", config)
	}
}

// TestValidateConfig 测试配置修正
func TestValidateConfig(t *testing.T) {
	defaults := getDefaultConfig()

	tests := []struct {
		desc   string
		modify func(*Config)
		check  func(Config) bool
	}{
		{"宽度小于边距", func(c *Config) { c.Chart.Width = 50 }, func(c Config) bool { return c.Chart.Width == defaults.Chart.Width }},
		{"高度小于边距", func(c *Config) { c.Chart.Height = 100 }, func(c Config) bool { return c.Chart.Height == defaults.Chart.Height }},
		{"负的初始柱数", func(c *Config) { c.Chart.InitialBars = -1 }, func(c Config) bool { return c.Chart.InitialBars == initialWindowSize }},
		{"初始柱数为 0 合法", func(c *Config) { c.Chart.InitialBars = 0 }, func(c Config) bool { return c.Chart.InitialBars == 0 }},
		{"未知语言", func(c *Config) { c.System.Language = "fr" }, func(c Config) bool { return c.System.Language == "en" }},
		{"空数据源", func(c *Config) { c.Data.Democrat = "" }, func(c Config) bool { return c.Data.Democrat == democratDataFile }},
		{"空颜色", func(c *Config) { c.Chart.DemocratColor = "" }, func(c Config) bool { return c.Chart.DemocratColor == "blue" }},
	}

	for _, tt := range tests {
		config := getDefaultConfig()
		tt.modify(&config)
		if got := validateConfig(config); !tt.check(got) {
			t.Errorf("%s: validateConfig() = %+v", tt.desc, got)
		}
	}
}

// TestDataSources 两个数据源的字段与挂载点
func TestDataSources(t *testing.T) {
	sources := dataSources(getDefaultConfig())
	if len(sources) != 2 {
		t.Fatalf("len(dataSources()) = %d, expected 2", len(sources))
	}
	if sources[0].Field != RepublicanSupport || sources[0].Mount != republicanMount {
		t.Errorf("sources[0] = %+v", sources[0])
	}
	if sources[1].Field != DemocratSupport || sources[1].Mount != democratMount {
		t.Errorf("sources[1] = %+v", sources[1])
	}
}
