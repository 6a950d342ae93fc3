package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// texts i18n 配置 - 各語言的文本映射
var texts map[Language]TextMap

// loadI18nFiles 載入 i18n 文件
func loadI18nFiles() {
	texts = make(map[Language]TextMap)

	// 讀取中文配置
	if zhData, err := os.ReadFile("i18n/zh.json"); err == nil {
		var zhTexts TextMap
		if err := json.Unmarshal(zhData, &zhTexts); err == nil {
			texts[Chinese] = zhTexts
		} else {
			fmt.Printf("Warning: Failed to parse i18n/zh.json: %v\n", err)
		}
	} else {
		fmt.Printf("Warning: Failed to read i18n/zh.json: %v\n", err)
	}

	// 讀取英文配置
	if enData, err := os.ReadFile("i18n/en.json"); err == nil {
		var enTexts TextMap
		if err := json.Unmarshal(enData, &enTexts); err == nil {
			texts[English] = enTexts
		} else {
			fmt.Printf("Warning: Failed to parse i18n/en.json: %v\n", err)
		}
	} else {
		fmt.Printf("Warning: Failed to read i18n/en.json: %v\n", err)
	}

	// 兩個語言檔都載入失敗就無法運行
	if len(texts) == 0 {
		fmt.Println("Error: No i18n files could be loaded. Please ensure i18n/zh.json and i18n/en.json exist.")
		os.Exit(1)
	}
}

// getText 取得本地化文本
func (m *Model) getText(key string) string {
	if text, exists := texts[m.language][key]; exists {
		return text
	}
	// 找不到時退回英文版本
	if text, exists := texts[English][key]; exists {
		return text
	}
	return key // 最後退回 key 本身
}
