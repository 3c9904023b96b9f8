package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
)

//go:embed i18n/*.json
var i18nFiles embed.FS

// texts i18n 配置 - 存储各语言的文本映射
var (
	texts     map[Language]TextMap
	textsOnce sync.Once
	textsErr  error
)

// activeLanguage 当前界面语言（日志写入也使用该语言）
var activeLanguage atomic.Value

// loadI18nFiles 加载内置的 i18n 文件，只执行一次
func loadI18nFiles() error {
	textsOnce.Do(func() {
		texts = make(map[Language]TextMap)
		for _, lang := range []Language{English, Chinese} {
			data, err := i18nFiles.ReadFile(fmt.Sprintf("i18n/%s.json", lang))
			if err != nil {
				textsErr = fmt.Errorf("read i18n/%s.json: %w", lang, err)
				continue
			}
			var tm TextMap
			if err := json.Unmarshal(data, &tm); err != nil {
				textsErr = fmt.Errorf("parse i18n/%s.json: %w", lang, err)
				continue
			}
			texts[lang] = tm
		}
	})
	return textsErr
}

// lookupText 查找文本：当前语言 → 英文 → key 本身
func lookupText(lang Language, key string) string {
	_ = loadI18nFiles()
	if text, exists := texts[lang][key]; exists {
		return text
	}
	if text, exists := texts[English][key]; exists {
		return text
	}
	return key
}

// setLanguage 切换当前语言
func setLanguage(lang Language) {
	activeLanguage.Store(lang)
}

func currentLanguage() Language {
	if lang, ok := activeLanguage.Load().(Language); ok {
		return lang
	}
	return English
}

// parseLanguage 将配置或命令行中的语言名称规范化
func parseLanguage(s string) Language {
	if Language(s) == Chinese {
		return Chinese
	}
	return English
}

// getText 获取本地化文本的辅助函数
func (m *Model) getText(key string) string {
	return lookupText(m.language, key)
}
