package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// USD→TWD 匯率抓取（當天抓過就用快取）
// ============================================================================

// rateResult 匯率解析結果
type rateResult struct {
	Rate     float64
	Date     string // 成功抓取時要寫入快取的日期鍵
	Fresh    bool   // true 表示本次由遠端取得，呼叫端需寫入快取並持久化
	Fallback bool   // true 表示抓取失敗，回傳的是備用匯率
}

// resolveRate 取得 USD→TWD 匯率
// 當日已有快取則直接回傳（不發出網路請求）；否則抓取一次遠端端點。
// 任何失敗（網路錯誤、非 200、回應格式錯誤、缺 TWD 欄位）都回傳備用匯率，
// 且不更新快取——下次呼叫會重新嘗試抓取。
func resolveRate(lastRateDate string, cachedRate float64, client *http.Client, apiURL, today string) rateResult {
	if lastRateDate == today && cachedRate > 0 {
		logDebug("log.rate.cacheHit", cachedRate, lastRateDate)
		return rateResult{Rate: cachedRate, Date: lastRateDate}
	}

	rate, err := fetchTWDRate(client, apiURL)
	if err != nil {
		logWarn("log.rate.fallback", err, fallbackRate)
		return rateResult{Rate: fallbackRate, Fallback: true}
	}

	logInfo("log.rate.fetchOK", rate)
	return rateResult{Rate: rate, Date: today, Fresh: true}
}

// fetchTWDRate 請求匯率端點並取出 TWD 匯率
func fetchTWDRate(client *http.Client, apiURL string) (float64, error) {
	resp, err := client.Get(apiURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var result struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, err
	}

	// 回應成功但缺 TWD 欄位一律視同失敗
	rate, ok := result.Rates["TWD"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("TWD rate missing in response")
	}

	return rate, nil
}

// ============================================================================
// 非同步匯率請求（bubbletea Cmd）
// ============================================================================

// fetchRateCmd 發出匯率請求
// 快取狀態在進入 Cmd 前先快照，網路抓取在 goroutine 裡完成，
// 結果帶著序號送回 Update；使用者已離開資產頁時結果會被捨棄。
func (m *Model) fetchRateCmd() tea.Cmd {
	seq := m.rateSeq
	lastRateDate := m.appData.LastRateDate
	cachedRate := m.appData.USDTWD
	apiURL := m.config.Rate.APIURL
	timeout := time.Duration(m.config.Rate.TimeoutSeconds) * time.Second

	return func() tea.Msg {
		client := &http.Client{Timeout: timeout}
		today := time.Now().Format(dateKeyLayout)
		return rateResultMsg{
			seq:    seq,
			result: resolveRate(lastRateDate, cachedRate, client, apiURL, today),
		}
	}
}

// handleRateResult 套用匯率結果（只在序號仍然有效且停留在資產頁時）
func (m *Model) handleRateResult(msg rateResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.rateSeq || m.state != PageAssets {
		logDebug("log.rate.stale", msg.seq)
		return m, nil
	}

	m.rateLoading = false
	m.rate = msg.result.Rate
	m.rateFallback = msg.result.Fallback

	if msg.result.Fresh {
		m.appData.USDTWD = msg.result.Rate
		m.appData.LastRateDate = msg.result.Date
		m.saveAppData()
	}

	return m, nil
}
