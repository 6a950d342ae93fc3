package main

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ============================================================================
// 資產頁：總資產摘要 + 持倉市值分布
// ============================================================================

// assetCardStyle 資產摘要卡片樣式
var assetCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// allocationBarStyles 分布圖柱狀顏色（按倉位順序輪用）
var allocationBarStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // 紅色
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // 綠色
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // 黃色
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // 青色
}

// handleAssets 資產頁按鍵處理
func (m *Model) handleAssets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		// 重新解析匯率（當天已有快取時仍直接回快取，不會重複請求）
		m.rateSeq++
		m.rateLoading = true
		return m, m.fetchRateCmd()
	}
	return m, nil
}

// viewAssets 渲染資產頁
func (m *Model) viewAssets() string {
	s := m.renderTabBar() + "\n"

	if m.rateLoading {
		s += m.getText("ui.assets.loading") + "\n"
		return s
	}

	usTotal, twTotal := m.marketTotals()
	grandTotal := twTotal + usTotal*m.rate

	usCard := fmt.Sprintf(m.getText("ui.assets.usTotal"), formatMoney(usTotal)) + "\n" +
		fmt.Sprintf(m.getText("ui.assets.usInTWD"), formatMoney(usTotal*m.rate))
	twCard := fmt.Sprintf(m.getText("ui.assets.twTotal"), formatMoney(twTotal))

	var rateInfo string
	if m.rateFallback {
		rateInfo = fmt.Sprintf(m.getText("ui.assets.rateFallback"), m.rate)
	} else {
		rateInfo = fmt.Sprintf(m.getText("ui.assets.rateInfo"), m.rate, m.appData.LastRateDate)
	}
	grandCard := fmt.Sprintf(m.getText("ui.assets.grandTotal"), formatMoney(grandTotal)) + "\n" + rateInfo

	s += assetCardStyle.Render(usCard) + "\n"
	s += assetCardStyle.Render(twCard) + "\n"
	s += assetCardStyle.Render(grandCard) + "\n"

	s += "\n" + m.getText("ui.assets.allocation") + "\n"
	s += m.renderAllocationChart() + "\n"

	s += "\n" + m.getText("ui.assets.hint") + "\n"
	return s
}

// renderAllocationChart 渲染各倉位市值分布柱狀圖（統一換算成 TWD 比較）
func (m *Model) renderAllocationChart() string {
	chartWidth := m.width - 4
	if chartWidth < 20 || chartWidth > 60 {
		chartWidth = 40
	}
	chartHeight := 8

	bc := barchart.New(chartWidth, chartHeight)
	for i, p := range m.positions {
		value := m.positionValue(p)
		if p.Market == MarketUS {
			value *= m.rate
		}
		bc.Push(barchart.BarData{
			Label: p.Symbol,
			Values: []barchart.BarValue{
				{Name: p.Symbol, Value: value, Style: allocationBarStyles[i%len(allocationBarStyles)]},
			},
		})
	}
	bc.Draw()

	return bc.View()
}
