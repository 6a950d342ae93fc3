package main

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 停利計算：出一半、鎖住一半獲利
// ============================================================================

// profitPlan 停利試算結果
type profitPlan struct {
	HalfShares    float64 // 出掉的一半股數
	Realized      float64 // 以現價出一半的已實現獲利
	RemainingCost float64 // 扣掉已實現獲利後歸屬剩餘持股的成本
	MaxDrop       float64 // 允許回吐的獲利上限（鎖住一半）
	StopPrice     float64 // 回吐到此價位時剛好吃掉 MaxDrop
}

// calcProfitPlan 停利試算，純函數
// price 有效現價、avgPrice 平均成本、shares 持有股數
func calcProfitPlan(price, avgPrice, shares float64) profitPlan {
	halfShares := shares / 2
	realized := (price - avgPrice) * halfShares
	maxDrop := realized / 2

	return profitPlan{
		HalfShares:    halfShares,
		Realized:      realized,
		RemainingCost: avgPrice*shares - realized,
		MaxDrop:       maxDrop,
		StopPrice:     price - maxDrop/halfShares,
	}
}

// ============================================================================
// 停利頁：按鍵處理
// ============================================================================

// handleProfit 停利頁按鍵處理
func (m *Model) handleProfit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		if m.selectedIndex >= 0 {
			m.state = EditingLookback
			m.input = strconv.Itoa(m.maLookback)
			m.inputCursor = len(m.input)
			m.message = ""
		}
	}
	return m, nil
}

// handleEditingLookback 參考均線天數輸入處理
func (m *Model) handleEditingLookback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = PageProfit
		m.message = ""
		return m, nil
	case "enter":
		days, err := strconv.Atoi(m.input)
		if err != nil || days <= 0 {
			m.message = m.getText("ui.profit.invalidLookback")
			m.input = ""
			m.inputCursor = 0
			return m, nil
		}
		m.maLookback = days
		m.state = PageProfit
		m.message = ""
		return m, nil
	default:
		handleTextInput(msg, &m.input, &m.inputCursor)
	}
	return m, nil
}

// ============================================================================
// 停利頁：渲染
// ============================================================================

// viewProfit 渲染停利頁
func (m *Model) viewProfit() string {
	s := m.renderTabBar() + "\n"

	// 未選定股票時只給提示，不做任何計算
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.positions) {
		s += m.getText("ui.profit.noSelection") + "\n"
		return s
	}

	p := m.positions[m.selectedIndex]
	price := m.effectivePrice(p)
	plan := calcProfitPlan(price, p.AvgPrice, p.Shares)

	s += fmt.Sprintf("%s (%s)\n\n", p.Name, p.Symbol)
	s += fmt.Sprintf(m.getText("ui.profit.summary"), formatShares(p.Shares), p.AvgPrice, price) + "\n"
	s += fmt.Sprintf(m.getText("ui.profit.halfShares"), formatShares(plan.HalfShares)) + "\n"
	s += fmt.Sprintf(m.getText("ui.profit.realized"), m.formatProfitWithColorZeroLang(plan.Realized)) + "\n"
	s += fmt.Sprintf(m.getText("ui.profit.remainingCost"), plan.RemainingCost) + "\n"
	s += fmt.Sprintf(m.getText("ui.profit.maxDrop"), plan.MaxDrop) + "\n"
	s += fmt.Sprintf(m.getText("ui.profit.stopPrice"), plan.StopPrice) + "\n"

	// 參考均線天數：預留設定，目前不參與任何計算
	s += "\n" + fmt.Sprintf(m.getText("ui.profit.lookback"), m.maLookback) + "\n"

	s += "\n" + m.getText("ui.profit.hint") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}

// viewEditingLookback 渲染參考均線天數編輯畫面
func (m *Model) viewEditingLookback() string {
	s := "=== " + m.getText("ui.profit.lookbackTitle") + " ===\n\n"
	s += m.getText("ui.profit.editLookback") + " " + formatTextWithCursor(m.input, m.inputCursor) + "\n"
	s += "\n" + m.getText("ui.common.back") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}
