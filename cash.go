package main

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 預備金資料操作（每次變更都整份持久化）
// ============================================================================

// updateBasic 更新每月基本開銷
func (m *Model) updateBasic(v float64) {
	m.appData.Cash.Basic = v
	m.saveAppData()
	logInfo("log.cash.updated", "basic", v)
}

// updateExtra 更新加碼現金
func (m *Model) updateExtra(v float64) {
	m.appData.Cash.Extra = v
	m.saveAppData()
	logInfo("log.cash.updated", "extra", v)
}

// addFutureExpense 新增未來花費項目
// 名稱為空或金額無法解析時靜默拒絕（回傳 false，清單不變）
func (m *Model) addFutureExpense(name, amountInput string) bool {
	amount, err := strconv.ParseFloat(amountInput, 64)
	if name == "" || err != nil {
		return false
	}

	m.appData.Cash.Future = append(m.appData.Cash.Future, FutureExpense{Name: name, Amount: amount})
	m.saveAppData()
	logInfo("log.cash.futureAdded", name, amount)
	return true
}

// removeFutureExpense 依索引刪除未來花費項目，保留其餘項目的相對順序
func (m *Model) removeFutureExpense(i int) {
	future := m.appData.Cash.Future
	if i < 0 || i >= len(future) {
		return
	}

	removed := future[i]
	m.appData.Cash.Future = append(future[:i], future[i+1:]...)
	m.saveAppData()
	logInfo("log.cash.futureRemoved", removed.Name)
}

// cashGrandTotal 預備金總額 = 基本開銷 + 加碼現金 + 未來花費總和
func (m *Model) cashGrandTotal() float64 {
	total := m.appData.Cash.Basic + m.appData.Cash.Extra
	for _, f := range m.appData.Cash.Future {
		total += f.Amount
	}
	return total
}

// ============================================================================
// 預備金頁：按鍵處理
// ============================================================================

// handleCash 預備金頁按鍵處理
func (m *Model) handleCash(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "w":
		if m.futureCursor > 0 {
			m.futureCursor--
			m.adjustFutureScroll()
		}
	case "down", "j", "s":
		if m.futureCursor < len(m.appData.Cash.Future)-1 {
			m.futureCursor++
			m.adjustFutureScroll()
		}
	case "b":
		m.state = EditingBasic
		m.input = strconv.FormatFloat(m.appData.Cash.Basic, 'f', -1, 64)
		m.inputCursor = len([]rune(m.input))
		m.message = ""
	case "x":
		m.state = EditingExtra
		m.input = strconv.FormatFloat(m.appData.Cash.Extra, 'f', -1, 64)
		m.inputCursor = len([]rune(m.input))
		m.message = ""
	case "a":
		m.state = AddingFutureName
		m.input = ""
		m.inputCursor = 0
		m.futureName = ""
		m.message = ""
	case "d", "delete":
		if len(m.appData.Cash.Future) > 0 {
			removed := m.appData.Cash.Future[m.futureCursor]
			m.removeFutureExpense(m.futureCursor)
			if m.futureCursor >= len(m.appData.Cash.Future) && m.futureCursor > 0 {
				m.futureCursor--
			}
			m.adjustFutureScroll()
			m.message = fmt.Sprintf(m.getText("ui.cash.removed"), removed.Name)
		}
	}
	return m, nil
}

// handleEditingCashField 基本開銷 / 加碼現金的編輯輸入處理
func (m *Model) handleEditingCashField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = PageCash
		m.message = ""
		return m, nil
	case "enter":
		// 拒絕無法解析的輸入，不寫入任何 NaN
		amount, err := strconv.ParseFloat(m.input, 64)
		if err != nil || amount < 0 {
			m.message = m.getText("ui.cash.invalidAmount")
			m.input = ""
			m.inputCursor = 0
			return m, nil
		}
		if m.state == EditingBasic {
			m.updateBasic(amount)
		} else {
			m.updateExtra(amount)
		}
		m.state = PageCash
		m.message = ""
		return m, nil
	default:
		handleTextInput(msg, &m.input, &m.inputCursor)
	}
	return m, nil
}

// handleAddingFuture 新增未來花費的兩步輸入處理（名稱 → 金額）
func (m *Model) handleAddingFuture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = PageCash
		m.message = ""
		return m, nil
	case "enter":
		if m.state == AddingFutureName {
			if m.input == "" {
				m.message = m.getText("ui.cash.emptyName")
				return m, nil
			}
			m.futureName = m.input
			m.state = AddingFutureAmount
			m.input = ""
			m.inputCursor = 0
			m.message = ""
			return m, nil
		}

		// 金額步驟：新增失敗（金額無法解析）時留在原步驟
		if !m.addFutureExpense(m.futureName, m.input) {
			m.message = m.getText("ui.cash.invalidEntry")
			m.input = ""
			m.inputCursor = 0
			return m, nil
		}

		m.state = PageCash
		m.input = ""
		m.inputCursor = 0
		m.futureCursor = len(m.appData.Cash.Future) - 1
		m.adjustFutureScroll()
		m.message = ""
		return m, nil
	default:
		handleTextInput(msg, &m.input, &m.inputCursor)
	}
	return m, nil
}

// adjustFutureScroll 讓游標保持在可見窗口內
func (m *Model) adjustFutureScroll() {
	maxLines := m.config.Display.MaxLines
	if m.futureCursor < m.futureScrollPos {
		m.futureScrollPos = m.futureCursor
	}
	if m.futureCursor >= m.futureScrollPos+maxLines {
		m.futureScrollPos = m.futureCursor - maxLines + 1
	}
	if m.futureScrollPos < 0 {
		m.futureScrollPos = 0
	}
}

// ============================================================================
// 預備金頁：渲染
// ============================================================================

// viewCash 渲染預備金頁
func (m *Model) viewCash() string {
	basic := m.appData.Cash.Basic
	stockTotal := m.stockTotal()

	s := m.renderTabBar() + "\n"

	// 生存現金：基本開銷與 6/9 個月跑道
	s += m.getText("ui.cash.survivalHeader") + "\n"
	s += fmt.Sprintf(m.getText("ui.cash.basic"), formatMoney(basic)) + "\n"
	s += fmt.Sprintf(m.getText("ui.cash.runway"), formatMoney(basic*6), formatMoney(basic*9)) + "\n\n"

	// 加碼現金目標：股票總額的 10% / 15%（僅供參考，與 extra 欄位無關）
	s += m.getText("ui.cash.deployHeader") + "\n"
	s += fmt.Sprintf(m.getText("ui.cash.deploy"), formatMoney(stockTotal*0.1), formatMoney(stockTotal*0.15)) + "\n\n"

	// 未來預計花費清單
	s += m.getText("ui.cash.futureHeader") + "\n"
	s += m.renderFutureList()

	s += "\n" + fmt.Sprintf(m.getText("ui.cash.grandTotal"), formatMoney(m.cashGrandTotal())) + "\n"
	s += "\n" + m.getText("ui.cash.hint") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}

// renderFutureList 渲染未來花費清單（超過 MaxLines 時窗口化顯示）
func (m *Model) renderFutureList() string {
	future := m.appData.Cash.Future
	if len(future) == 0 {
		return m.getText("ui.cash.futureEmpty") + "\n"
	}

	maxLines := m.config.Display.MaxLines
	start := m.futureScrollPos
	end := start + maxLines
	if end > len(future) {
		end = len(future)
	}

	var s string
	if start > 0 {
		s += fmt.Sprintf(m.getText("ui.cash.moreAbove"), start) + "\n"
	}
	for i := start; i < end; i++ {
		prefix := "  "
		if i == m.futureCursor {
			prefix = "► "
		}
		s += prefix + fmt.Sprintf(m.getText("ui.cash.futureItem"), future[i].Name, formatMoney(future[i].Amount)) + "\n"
	}
	if end < len(future) {
		s += fmt.Sprintf(m.getText("ui.cash.moreBelow"), len(future)-end) + "\n"
	}

	return s
}

// viewEditingCashField 渲染基本開銷 / 加碼現金編輯畫面
func (m *Model) viewEditingCashField() string {
	var title, prompt string
	if m.state == EditingBasic {
		title = m.getText("ui.cash.basicTitle")
		prompt = m.getText("ui.cash.basicPrompt")
	} else {
		title = m.getText("ui.cash.extraTitle")
		prompt = m.getText("ui.cash.extraPrompt")
	}

	s := "=== " + title + " ===\n\n"
	s += prompt + " " + formatTextWithCursor(m.input, m.inputCursor) + "\n"
	s += "\n" + m.getText("ui.common.back") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}

// viewAddingFuture 渲染新增未來花費畫面（兩步）
func (m *Model) viewAddingFuture() string {
	s := "=== " + m.getText("ui.cash.addTitle") + " ===\n\n"

	if m.state == AddingFutureName {
		s += m.getText("ui.cash.namePrompt") + " " + formatTextWithCursor(m.input, m.inputCursor) + "\n"
	} else {
		s += fmt.Sprintf(m.getText("ui.cash.nameConfirmed"), m.futureName) + "\n"
		s += m.getText("ui.cash.amountPrompt") + " " + formatTextWithCursor(m.input, m.inputCursor) + "\n"
	}

	s += "\n" + m.getText("ui.common.back") + "\n"

	if m.message != "" {
		s += "\n" + m.message + "\n"
	}

	return s
}
