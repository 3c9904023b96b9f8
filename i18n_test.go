package main

import (
	"strings"
	"testing"
)

// TestI18nFilesConsistent 中英文件的键必须一致，格式化参数个数必须一致
func TestI18nFilesConsistent(t *testing.T) {
	if err := loadI18nFiles(); err != nil {
		t.Fatalf("loadI18nFiles() error: %v", err)
	}

	en, zh := texts[English], texts[Chinese]
	if len(en) == 0 || len(zh) == 0 {
		t.Fatalf("i18n files are empty: en=%d zh=%d", len(en), len(zh))
	}
	for key, enText := range en {
		zhText, ok := zh[key]
		if !ok {
			t.Errorf("zh.json missing key %q", key)
			continue
		}
		if strings.Count(enText, "%")-2*strings.Count(enText, "%%") != strings.Count(zhText, "%")-2*strings.Count(zhText, "%%") {
			t.Errorf("key %q has different format verbs: %q vs %q", key, enText, zhText)
		}
	}
	for key := range zh {
		if _, ok := en[key]; !ok {
			t.Errorf("en.json missing key %q", key)
		}
	}
}

// TestLookupText 测试回退顺序
func TestLookupText(t *testing.T) {
	tests := []struct {
		lang     Language
		key      string
		expected string
	}{
		{English, "chart.republican", "Republican Support"},
		{Chinese, "chart.republican", "共和党支持度"},
		{Chinese, "no.such.key", "no.such.key"},
	}

	for _, tt := range tests {
		if got := lookupText(tt.lang, tt.key); got != tt.expected {
			t.Errorf("lookupText(%s, %q) = %q, expected %q", tt.lang, tt.key, got, tt.expected)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
	}{
		{"zh", Chinese},
		{"en", English},
		{"", English},
		{"fr", English},
	}

	for _, tt := range tests {
		if got := parseLanguage(tt.input); got != tt.expected {
			t.Errorf("parseLanguage(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
