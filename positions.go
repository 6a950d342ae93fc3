package main

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jedib0t/go-pretty/v6/table"
)

// ============================================================================
// 倉位清單（啟動時寫死，重啟即還原）
// ============================================================================

// defaultPositions 內建持倉清單
// symbol 在清單內必須唯一：它是現價覆寫表的查找鍵
func defaultPositions() []Position {
	return []Position{
		{Market: MarketUS, Type: TypeStock, Symbol: "ONDS", Name: "Ondas Holdings", Shares: 120, AvgPrice: 5.2, CurrentPrice: 7.3},
		{Market: MarketUS, Type: TypeDCA, Symbol: "VOO", Name: "VOO ETF", Shares: 50, AvgPrice: 400, CurrentPrice: 410},
		{Market: MarketTW, Type: TypeStock, Symbol: "2330", Name: "台積電", Shares: 30, AvgPrice: 550, CurrentPrice: 580},
		{Market: MarketTW, Type: TypeDCA, Symbol: "0050", Name: "台灣50", Shares: 20, AvgPrice: 130, CurrentPrice: 135},
	}
}

// ============================================================================
// 價格與市值計算
// ============================================================================

// effectivePrice 有效價格：有手動覆寫就用覆寫，否則用靜態現價
func (m *Model) effectivePrice(p Position) float64 {
	if price, ok := m.appData.Prices[p.Symbol]; ok && price > 0 {
		return price
	}
	return p.CurrentPrice
}

// positionValue 單一倉位市值（有效價格 × 股數）
func (m *Model) positionValue(p Position) float64 {
	return m.effectivePrice(p) * p.Shares
}

// marketTotals 各市場總市值（美股以 USD 計、台股以 TWD 計）
func (m *Model) marketTotals() (usTotal, twTotal float64) {
	for _, p := range m.positions {
		value := m.positionValue(p)
		if p.Market == MarketUS {
			usTotal += value
		} else {
			twTotal += value
		}
	}
	return usTotal, twTotal
}

// stockTotal 全部倉位的市值總和（不分市場，直接相加）
func (m *Model) stockTotal() float64 {
	var total float64
	for _, p := range m.positions {
		total += m.positionValue(p)
	}
	return total
}

// marketPositions 取出目前市場的倉位（保持清單順序）
func (m *Model) marketPositions() []Position {
	var filtered []Position
	for _, p := range m.positions {
		if p.Market == m.currentMarket {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ============================================================================
// 倉位頁：按鍵處理
// ============================================================================

// handlePositions 倉位頁按鍵處理
func (m *Model) handlePositions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtered := m.marketPositions()

	switch msg.String() {
	case "up", "k", "w":
		if m.positionCursor > 0 {
			m.positionCursor--
		}
	case "down", "j", "s":
		if m.positionCursor < len(filtered)-1 {
			m.positionCursor++
		}
	case "tab", "m":
		m.switchMarket()
	case "e":
		if len(filtered) > 0 {
			// 帶入有效價格當作輸入預設值
			p := filtered[m.positionCursor]
			m.state = EditingPrice
			m.input = strconv.FormatFloat(m.effectivePrice(p), 'f', -1, 64)
			m.inputCursor = len([]rune(m.input))
			m.message = ""
		}
	case "enter", " ":
		if len(filtered) > 0 {
			m.selectStock(filtered[m.positionCursor].Symbol)
			return m, m.switchPage(PageProfit)
		}
	}
	return m, nil
}

// switchMarket 切換市場篩選（US ↔ TW）並重置游標
func (m *Model) switchMarket() {
	if m.currentMarket == MarketUS {
		m.currentMarket = MarketTW
	} else {
		m.currentMarket = MarketUS
	}
	m.positionCursor = 0
	m.message = ""
}

// selectStock 選定倉位供停利分析
func (m *Model) selectStock(symbol string) {
	for i, p := range m.positions {
		if p.Symbol == symbol {
			m.selectedIndex = i
			return
		}
	}
}

// handleEditingPrice 現價編輯輸入處理
func (m *Model) handleEditingPrice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = PagePositions
		m.message = ""
		return m, nil
	case "enter":
		filtered := m.marketPositions()
		if len(filtered) == 0 {
			m.state = PagePositions
			return m, nil
		}
		p := filtered[m.positionCursor]

		// 拒絕無法解析的輸入，不寫入任何 NaN
		price, err := strconv.ParseFloat(m.input, 64)
		if err != nil || price <= 0 {
			m.message = m.getText("ui.positions.invalidPrice")
			m.input = ""
			m.inputCursor = 0
			return m, nil
		}

		m.updatePrice(p.Symbol, price)
		m.state = PagePositions
		m.message = fmt.Sprintf(m.getText("ui.positions.priceUpdated"), p.Symbol, price)
		return m, nil
	default:
		handleTextInput(msg, &m.input, &m.inputCursor)
	}
	return m, nil
}

// updatePrice 寫入現價覆寫並持久化
func (m *Model) updatePrice(symbol string, price float64) {
	m.appData.Prices[symbol] = price
	m.saveAppData()
	logInfo("log.price.updated", symbol, price)
}

// ============================================================================
// 倉位頁：渲染
// ============================================================================

// viewPositions 渲染倉位頁
func (m *Model) viewPositions() string {
	s := m.renderTabBar() + "\n"
	s += fmt.Sprintf(m.getText("ui.positions.market"), m.marketLabel(m.currentMarket)) + "\n\n"

	filtered := m.marketPositions()
	if len(filtered) == 0 {
		s += m.getText("ui.positions.empty") + "\n"
		return s
	}

	dp := m.config.Display.DecimalPlaces

	t := table.NewWriter()
	t.SetStyle(m.tableStyle())
	t.AppendHeader(table.Row{
		"",
		m.getText("ui.positions.colSymbol"),
		m.getText("ui.positions.colName"),
		m.getText("ui.positions.colShares"),
		m.getText("ui.positions.colAvg"),
		m.getText("ui.positions.colPrice"),
		m.getText("ui.positions.colValue"),
	})

	for i, p := range filtered {
		prefix := " "
		if i == m.positionCursor {
			prefix = "►"
		}
		price := m.effectivePrice(p)
		t.AppendRow(table.Row{
			prefix,
			p.Symbol,
			p.Name,
			formatShares(p.Shares),
			fmt.Sprintf("%.*f", dp, p.AvgPrice),
			fmt.Sprintf("%.*f", dp, price),
			formatMoney2(price * p.Shares),
		})
	}

	s += t.Render() + "\n"
	s += "\n" + m.getText("ui.positions.hint") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}

// viewEditingPrice 渲染現價編輯畫面
func (m *Model) viewEditingPrice() string {
	s := "=== " + m.getText("ui.positions.editTitle") + " ===\n\n"

	filtered := m.marketPositions()
	if len(filtered) > 0 {
		p := filtered[m.positionCursor]
		s += fmt.Sprintf("%s (%s)\n", p.Name, p.Symbol)
		s += fmt.Sprintf(m.getText("ui.positions.editPrompt"), p.Symbol)
		s += " " + formatTextWithCursor(m.input, m.inputCursor) + "\n"
	}

	s += "\n" + m.getText("ui.common.back") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}

// marketLabel 市場顯示名稱
func (m *Model) marketLabel(market Market) string {
	if market == MarketUS {
		return m.getText("ui.market.us")
	}
	return m.getText("ui.market.tw")
}

// tableStyle 依配置取得表格樣式
func (m *Model) tableStyle() table.Style {
	switch m.config.Display.TableStyle {
	case "bold":
		return table.StyleBold
	case "simple":
		return table.StyleDefault
	default:
		return table.StyleLight
	}
}
