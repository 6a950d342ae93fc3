package main

import "testing"

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return &Model{
		positions:     defaultPositions(),
		appData:       defaultAppData(),
		currentMarket: MarketUS,
		selectedIndex: -1,
		config:        getDefaultConfig(),
		dataPath:      t.TempDir() + "/appdata.json",
	}
}

func (m *Model) findPosition(t *testing.T, symbol string) Position {
	t.Helper()
	for _, p := range m.positions {
		if p.Symbol == symbol {
			return p
		}
	}
	t.Fatalf("position %s not found", symbol)
	return Position{}
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		desc     string
		symbol   string
		override float64 // 0 表示不設覆寫
		expected float64
	}{
		{"無覆寫時用靜態現價", "ONDS", 0, 7.3},
		{"有覆寫時用覆寫價", "ONDS", 8.0, 8.0},
		{"台股覆寫", "2330", 600, 600},
		{"其他股票的覆寫不互相影響", "VOO", 0, 410},
	}

	for _, tt := range tests {
		m := newTestModel(t)
		if tt.override > 0 {
			m.appData.Prices[tt.symbol] = tt.override
		}

		got := m.effectivePrice(m.findPosition(t, tt.symbol))
		if got != tt.expected {
			t.Errorf("%s: effectivePrice(%s) = %v, expected %v", tt.desc, tt.symbol, got, tt.expected)
		}
	}
}

func TestEffectivePriceZeroOverrideFallsBack(t *testing.T) {
	// 覆寫值為零視同未覆寫，退回靜態現價
	m := newTestModel(t)
	m.appData.Prices["ONDS"] = 0

	if got := m.effectivePrice(m.findPosition(t, "ONDS")); got != 7.3 {
		t.Errorf("effectivePrice = %v, expected 7.3", got)
	}
}

func TestMarketTotals(t *testing.T) {
	m := newTestModel(t)

	// 美股: 7.3×120 + 410×50 = 876 + 20500 = 21376
	// 台股: 580×30 + 135×20 = 17400 + 2700 = 20100
	usTotal, twTotal := m.marketTotals()
	if !almostEqual(usTotal, 21376) {
		t.Errorf("usTotal = %v, expected 21376", usTotal)
	}
	if !almostEqual(twTotal, 20100) {
		t.Errorf("twTotal = %v, expected 20100", twTotal)
	}

	// 覆寫現價後總值要跟著變
	m.appData.Prices["ONDS"] = 8.0
	usTotal, _ = m.marketTotals()
	if !almostEqual(usTotal, 8.0*120+20500) {
		t.Errorf("usTotal with override = %v, expected %v", usTotal, 8.0*120+20500)
	}
}

func TestStockTotal(t *testing.T) {
	m := newTestModel(t)

	// 全部倉位直接相加（不分市場）
	if got := m.stockTotal(); !almostEqual(got, 21376+20100) {
		t.Errorf("stockTotal = %v, expected %v", got, 21376+20100)
	}
}

func TestMarketPositionsFilterKeepsOrder(t *testing.T) {
	m := newTestModel(t)
	m.currentMarket = MarketTW

	filtered := m.marketPositions()
	if len(filtered) != 2 {
		t.Fatalf("len = %d, expected 2", len(filtered))
	}
	if filtered[0].Symbol != "2330" || filtered[1].Symbol != "0050" {
		t.Errorf("order = %s, %s, expected 2330, 0050", filtered[0].Symbol, filtered[1].Symbol)
	}
}

func TestSwitchMarket(t *testing.T) {
	m := newTestModel(t)
	m.positionCursor = 1

	m.switchMarket()
	if m.currentMarket != MarketTW {
		t.Errorf("currentMarket = %s, expected TW", m.currentMarket)
	}
	if m.positionCursor != 0 {
		t.Errorf("positionCursor = %d, expected 0 after switch", m.positionCursor)
	}

	m.switchMarket()
	if m.currentMarket != MarketUS {
		t.Errorf("currentMarket = %s, expected US", m.currentMarket)
	}
}

func TestUpdatePricePersists(t *testing.T) {
	m := newTestModel(t)

	m.updatePrice("ONDS", 8.0)

	if m.appData.Prices["ONDS"] != 8.0 {
		t.Errorf("Prices[ONDS] = %v, expected 8.0", m.appData.Prices["ONDS"])
	}

	reloaded := loadAppDataFile(m.dataPath)
	if reloaded.Prices["ONDS"] != 8.0 {
		t.Errorf("persisted Prices[ONDS] = %v, expected 8.0", reloaded.Prices["ONDS"])
	}
}

func TestSelectStock(t *testing.T) {
	m := newTestModel(t)

	m.selectStock("2330")
	if m.selectedIndex != 2 {
		t.Errorf("selectedIndex = %d, expected 2", m.selectedIndex)
	}

	// 不存在的代碼不得改變選定狀態
	m.selectStock("NOPE")
	if m.selectedIndex != 2 {
		t.Errorf("selectedIndex = %d, expected unchanged 2", m.selectedIndex)
	}
}
