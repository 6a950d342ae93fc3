package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ============================================================================
// AppData 持久化（單一 JSON blob）
// ============================================================================

// loadAppData 從預設路徑載入持久化狀態
func loadAppData() AppData {
	return loadAppDataFile(appDataFile)
}

// loadAppDataFile 載入持久化狀態（檔案缺失或毀損時回傳預設值，不報錯）
func loadAppDataFile(path string) AppData {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultAppData()
	}

	var appData AppData
	if err := json.Unmarshal(data, &appData); err != nil {
		logWarn("log.store.corrupt", err)
		return defaultAppData()
	}

	// 舊檔可能缺欄位，補齊零值容器
	if appData.Prices == nil {
		appData.Prices = map[string]float64{}
	}
	if appData.Cash.Future == nil {
		appData.Cash.Future = []FutureExpense{}
	}

	return appData
}

// saveAppData 將整份狀態重新序列化後寫回（每次變更都全量重寫）
func (m *Model) saveAppData() {
	path := m.dataPath
	if path == "" {
		path = appDataFile
	}
	if err := writeAppDataFile(path, m.appData); err != nil {
		logError("log.store.saveFail", err)
	}
}

// writeAppDataFile 寫出持久化狀態
func writeAppDataFile(path string, appData AppData) error {
	data, err := json.MarshalIndent(appData, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
