package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// globalModel 全域模型引用（供日誌文本查詢語言設定）
var globalModel *Model

// 頁籤樣式
var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func main() {
	config := loadConfig()

	logLevel := LogInfo
	if config.System.DebugMode {
		logLevel = LogDebug
	}
	if err := InitLogger(logDir, logLevel); err != nil {
		fmt.Printf("Warning: failed to init logger: %v\n", err)
	}

	loadI18nFiles()

	m := &Model{
		state:         PageAssets,
		config:        config,
		language:      Language(config.System.Language),
		positions:     defaultPositions(),
		appData:       loadAppData(),
		currentMarket: MarketUS,
		selectedIndex: -1,
		maLookback:    defaultLookbackDays,
	}
	globalModel = m

	logInfo("log.app.start")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logInfo("log.app.quit")
	if globalLogger != nil {
		globalLogger.Sync()
	}
}

// ============================================================================
// bubbletea Model 接口
// ============================================================================

func (m *Model) Init() tea.Cmd {
	// 初始頁面為資產頁，進場即解析匯率
	return m.switchPage(PageAssets)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case rateResultMsg:
		return m.handleRateResult(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case PageAssets:
		return m.viewAssets()
	case PagePositions:
		return m.viewPositions()
	case PageProfit:
		return m.viewProfit()
	case PageCash:
		return m.viewCash()
	case EditingPrice:
		return m.viewEditingPrice()
	case EditingLookback:
		return m.viewEditingLookback()
	case EditingBasic, EditingExtra:
		return m.viewEditingCashField()
	case AddingFutureName, AddingFutureAmount:
		return m.viewAddingFuture()
	}
	return ""
}

// ============================================================================
// 按鍵路由
// ============================================================================

// handleKey 分派按鍵事件：頁面捷徑鍵只在非輸入狀態下生效
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.isPageState() {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1":
			return m, m.switchPage(PageAssets)
		case "2":
			return m, m.switchPage(PagePositions)
		case "3":
			return m, m.switchPage(PageProfit)
		case "4":
			return m, m.switchPage(PageCash)
		}
	} else if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case PageAssets:
		return m.handleAssets(msg)
	case PagePositions:
		return m.handlePositions(msg)
	case PageProfit:
		return m.handleProfit(msg)
	case PageCash:
		return m.handleCash(msg)
	case EditingPrice:
		return m.handleEditingPrice(msg)
	case EditingLookback:
		return m.handleEditingLookback(msg)
	case EditingBasic, EditingExtra:
		return m.handleEditingCashField(msg)
	case AddingFutureName, AddingFutureAmount:
		return m.handleAddingFuture(msg)
	}
	return m, nil
}

// isPageState 是否處於四個頁面之一（而非輸入狀態）
func (m *Model) isPageState() bool {
	switch m.state {
	case PageAssets, PagePositions, PageProfit, PageCash:
		return true
	}
	return false
}

// switchPage 切換頁面：任何頁面可達任何頁面，無轉換守衛
func (m *Model) switchPage(page AppState) tea.Cmd {
	m.state = page
	m.message = ""

	switch page {
	case PageAssets:
		// 進入資產頁即觸發匯率解析；舊請求的結果會因序號不符被捨棄
		m.rateSeq++
		m.rateLoading = true
		return m.fetchRateCmd()
	case PagePositions:
		filtered := m.marketPositions()
		if m.positionCursor >= len(filtered) {
			m.positionCursor = 0
		}
	case PageCash:
		if m.futureCursor >= len(m.appData.Cash.Future) {
			m.futureCursor = 0
			m.futureScrollPos = 0
		}
	}
	return nil
}

// ============================================================================
// 頁籤列
// ============================================================================

// renderTabBar 渲染頁籤列（目前頁面高亮）
func (m *Model) renderTabBar() string {
	tabs := []struct {
		page AppState
		key  string
	}{
		{PageAssets, "ui.nav.assets"},
		{PagePositions, "ui.nav.positions"},
		{PageProfit, "ui.nav.profit"},
		{PageCash, "ui.nav.cash"},
	}

	var parts []string
	for i, tab := range tabs {
		label := fmt.Sprintf(" %d %s ", i+1, m.getText(tab.key))
		if m.state == tab.page {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}

	return strings.Join(parts, " ") + "\n" + m.getText("ui.nav.hint") + "\n"
}
