package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Config 配置文件持久化
// ============================================================================

// getDefaultConfig 取得預設配置
func getDefaultConfig() Config {
	return Config{
		System: SystemConfig{
			Language:  "zh",  // 預設中文
			DebugMode: false, // 調試模式關閉
		},
		Display: DisplayConfig{
			TableStyle:    "light", // 輕量表格樣式
			DecimalPlaces: 2,       // 2位小數
			MaxLines:      10,      // 清單每頁最多10行
		},
		Rate: RateConfig{
			APIURL:         "https://api.exchangerate-api.com/v4/latest/USD",
			TimeoutSeconds: 10,
		},
	}
}

// loadConfig 載入配置文件
func loadConfig() Config {
	data, err := os.ReadFile(configFile)
	if err != nil {
		// 配置文件不存在時建立預設配置文件
		config := getDefaultConfig()
		saveConfig(config)
		return config
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		// 配置文件格式錯誤時改用預設配置
		return getDefaultConfig()
	}

	// 驗證配置的合理性
	if config.Display.MaxLines <= 0 || config.Display.MaxLines > 50 {
		config.Display.MaxLines = 10
	}
	if config.Display.DecimalPlaces < 0 || config.Display.DecimalPlaces > 6 {
		config.Display.DecimalPlaces = 2
	}
	if config.Rate.APIURL == "" {
		config.Rate.APIURL = getDefaultConfig().Rate.APIURL
	}
	if config.Rate.TimeoutSeconds <= 0 {
		config.Rate.TimeoutSeconds = 10
	}
	if config.System.Language != string(Chinese) && config.System.Language != string(English) {
		config.System.Language = string(Chinese)
	}

	return config
}

// saveConfig 保存配置文件
func saveConfig(config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return err
	}
	return os.WriteFile(configFile, data, 0644)
}
