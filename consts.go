package main

// 檔案路徑常量
const (
	appDataFile = "data/appdata.json"
	configFile  = "cmd/conf/config.yml"
	logDir      = "logs"
)

// 匯率相關常量
const (
	// fallbackRate 抓取失敗時的備用匯率（USD→TWD）
	fallbackRate = 32.0
	// dateKeyLayout 匯率快取的日期鍵格式
	dateKeyLayout = "2006-01-02"
)

// defaultLookbackDays 停利頁參考均線的預設天數（預留設定，未參與計算）
const defaultLookbackDays = 20

// 語言常量
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// Market 市場別
type Market string

const (
	MarketUS Market = "US"
	MarketTW Market = "TW"
)

// PositionType 持倉類型（僅供顯示，不參與任何計算）
type PositionType string

const (
	TypeStock PositionType = "stock"
	TypeDCA   PositionType = "dca"
)

// 應用狀態常量
type AppState int

const (
	PageAssets AppState = iota
	PagePositions
	PageProfit
	PageCash
	EditingPrice       // 倉位頁：編輯現價
	EditingLookback    // 停利頁：設定參考均線天數
	EditingBasic       // 預備金頁：編輯每月基本開銷
	EditingExtra       // 預備金頁：編輯加碼現金
	AddingFutureName   // 預備金頁：新增未來花費（名稱）
	AddingFutureAmount // 預備金頁：新增未來花費（金額）
)
