package main

// Position 持倉資料結構（啟動時寫死，不做持久化）
type Position struct {
	Market       Market       `json:"market"`
	Type         PositionType `json:"type"`
	Symbol       string       `json:"symbol"`
	Name         string       `json:"name"`
	Shares       float64      `json:"shares"`
	AvgPrice     float64      `json:"avg_price"`
	CurrentPrice float64      `json:"current_price"`
}

// FutureExpense 未來預計花費項目
type FutureExpense struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// CashData 預備金資料
type CashData struct {
	Basic  float64         `json:"basic"`
	Extra  float64         `json:"extra"`
	Future []FutureExpense `json:"future"`
}

// AppData 持久化應用狀態（單一 JSON blob，每次變更整份重寫）
type AppData struct {
	Prices       map[string]float64 `json:"prices"`       // 手動輸入的現價覆寫 symbol → price
	Cash         CashData           `json:"cash"`         // 預備金資料
	LastRateDate string             `json:"lastRateDate"` // 上次成功抓匯率的日期鍵 (YYYY-MM-DD)
	USDTWD       float64            `json:"USD_TWD"`      // 快取的 USD→TWD 匯率
}

// defaultAppData 預設的持久化狀態（檔案缺失或毀損時使用）
func defaultAppData() AppData {
	return AppData{
		Prices: map[string]float64{},
		Cash: CashData{
			Basic:  0,
			Extra:  0,
			Future: []FutureExpense{},
		},
	}
}

// Config 系統配置結構
type Config struct {
	System  SystemConfig  `yaml:"system"`  // 系統設定
	Display DisplayConfig `yaml:"display"` // 顯示設定
	Rate    RateConfig    `yaml:"rate"`    // 匯率設定
}

// SystemConfig 系統設定
type SystemConfig struct {
	Language  string `yaml:"language"`   // 介面語言 "zh" 或 "en"
	DebugMode bool   `yaml:"debug_mode"` // 調試模式（日誌降到 DEBUG 級別）
}

// DisplayConfig 顯示設定
type DisplayConfig struct {
	TableStyle    string `yaml:"table_style"`    // 表格樣式 "light", "bold", "simple"
	DecimalPlaces int    `yaml:"decimal_places"` // 價格顯示小數位數
	MaxLines      int    `yaml:"max_lines"`      // 清單每頁最大顯示行數
}

// RateConfig 匯率設定
type RateConfig struct {
	APIURL         string `yaml:"api_url"`         // 匯率查詢端點（以 USD 為基準幣別）
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP 逾時秒數
}

// TextMap 文本映射結構（用於 i18n）
type TextMap map[string]string

// Model 應用程式主模型
type Model struct {
	state    AppState
	config   Config
	language Language

	positions []Position // 倉位清單（固定，不持久化）
	appData   AppData    // 持久化應用狀態
	dataPath  string     // 持久化檔案路徑（空值時用預設路徑）

	// 通用輸入框
	input       string
	inputCursor int
	message     string

	// 資產頁匯率狀態
	rate         float64
	rateFallback bool // 本次顯示的是備用匯率
	rateLoading  bool
	rateSeq      int // 匯率請求序號，過期結果直接捨棄

	// 倉位頁
	currentMarket  Market
	positionCursor int
	selectedIndex  int // 停利分析選定的倉位索引（-1 表示未選）

	// 停利頁
	maLookback int // 參考均線天數（預留設定，未參與計算）

	// 預備金頁
	futureCursor    int
	futureScrollPos int
	futureName      string // 新增花費流程的暫存名稱

	// 視窗尺寸（圖表用）
	width  int
	height int
}

// rateResultMsg 匯率解析完成訊息
type rateResultMsg struct {
	seq    int
	result rateResult
}
