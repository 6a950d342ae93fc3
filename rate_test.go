package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const testToday = "2026-08-29"

func testHTTPClient() *http.Client {
	return &http.Client{Timeout: 2 * time.Second}
}

func TestResolveRateUsesCacheSameDay(t *testing.T) {
	// 當天已有快取時不得發出任何網路請求
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"rates":{"TWD":33.1}}`))
	}))
	defer server.Close()

	result := resolveRate(testToday, 31.5, testHTTPClient(), server.URL, testToday)

	if result.Rate != 31.5 {
		t.Errorf("Rate = %v, expected 31.5 (cached)", result.Rate)
	}
	if result.Fresh || result.Fallback {
		t.Errorf("Fresh = %v, Fallback = %v, expected both false", result.Fresh, result.Fallback)
	}
	if hits.Load() != 0 {
		t.Errorf("cache hit issued %d network calls, expected 0", hits.Load())
	}
}

func TestResolveRateFetchesWhenCacheStale(t *testing.T) {
	tests := []struct {
		desc         string
		lastRateDate string
		cachedRate   float64
	}{
		{"快取是昨天的", "2026-08-28", 31.5},
		{"從未抓取過", "", 0},
		{"日期相同但快取值為零", testToday, 0},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"TWD":32.5,"JPY":147.1}}`))
	}))
	defer server.Close()

	for _, tt := range tests {
		result := resolveRate(tt.lastRateDate, tt.cachedRate, testHTTPClient(), server.URL, testToday)

		if result.Rate != 32.5 {
			t.Errorf("%s: Rate = %v, expected 32.5", tt.desc, result.Rate)
		}
		if !result.Fresh {
			t.Errorf("%s: Fresh = false, expected true", tt.desc)
		}
		if result.Date != testToday {
			t.Errorf("%s: Date = %q, expected %q", tt.desc, result.Date, testToday)
		}
	}
}

func TestResolveRateFallback(t *testing.T) {
	tests := []struct {
		desc    string
		handler http.HandlerFunc
	}{
		{"伺服器錯誤", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"回應不是JSON", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
		{"回應成功但缺TWD欄位", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rates":{"JPY":147.1}}`))
		}},
		{"TWD欄位為零", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rates":{"TWD":0}}`))
		}},
	}

	for _, tt := range tests {
		server := httptest.NewServer(tt.handler)
		result := resolveRate("2026-08-28", 31.5, testHTTPClient(), server.URL, testToday)
		server.Close()

		if result.Rate != fallbackRate {
			t.Errorf("%s: Rate = %v, expected fallback %v", tt.desc, result.Rate, fallbackRate)
		}
		if !result.Fallback {
			t.Errorf("%s: Fallback = false, expected true", tt.desc)
		}
		// Fresh 必須為 false：失敗不得寫入快取，下次呼叫才會重試
		if result.Fresh {
			t.Errorf("%s: Fresh = true, expected false", tt.desc)
		}
	}
}

func TestResolveRateNetworkError(t *testing.T) {
	// 連不上的端點
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	result := resolveRate("", 0, testHTTPClient(), url, testToday)

	if result.Rate != fallbackRate || !result.Fallback || result.Fresh {
		t.Errorf("network error: got %+v, expected fallback %v with Fresh=false", result, fallbackRate)
	}
}

func TestHandleRateResultFallbackLeavesCacheUntouched(t *testing.T) {
	m := &Model{
		state:       PageAssets,
		appData:     defaultAppData(),
		rateSeq:     1,
		rateLoading: true,
		dataPath:    t.TempDir() + "/appdata.json",
	}
	m.appData.LastRateDate = "2026-08-28"
	m.appData.USDTWD = 31.5

	m.handleRateResult(rateResultMsg{seq: 1, result: rateResult{Rate: fallbackRate, Fallback: true}})

	if m.rate != fallbackRate {
		t.Errorf("rate = %v, expected %v", m.rate, fallbackRate)
	}
	if m.appData.LastRateDate != "2026-08-28" || m.appData.USDTWD != 31.5 {
		t.Errorf("fallback must not touch the cache, got %q / %v", m.appData.LastRateDate, m.appData.USDTWD)
	}
	if m.rateLoading {
		t.Error("rateLoading should be cleared")
	}
}

func TestHandleRateResultDiscardsStaleResult(t *testing.T) {
	tests := []struct {
		desc  string
		state AppState
		seq   int
	}{
		{"序號已過期", PageAssets, 1},
		{"已離開資產頁", PageCash, 2},
	}

	for _, tt := range tests {
		m := &Model{
			state:       tt.state,
			appData:     defaultAppData(),
			rateSeq:     2,
			rateLoading: true,
			dataPath:    t.TempDir() + "/appdata.json",
		}

		m.handleRateResult(rateResultMsg{
			seq:    tt.seq,
			result: rateResult{Rate: 33.0, Date: testToday, Fresh: true},
		})

		if m.appData.USDTWD != 0 || m.appData.LastRateDate != "" {
			t.Errorf("%s: discarded result must not be applied, got %v / %q",
				tt.desc, m.appData.USDTWD, m.appData.LastRateDate)
		}
	}
}

func TestHandleRateResultAppliesFreshResult(t *testing.T) {
	m := &Model{
		state:       PageAssets,
		appData:     defaultAppData(),
		rateSeq:     1,
		rateLoading: true,
		dataPath:    t.TempDir() + "/appdata.json",
	}

	m.handleRateResult(rateResultMsg{
		seq:    1,
		result: rateResult{Rate: 32.5, Date: testToday, Fresh: true},
	})

	if m.rate != 32.5 {
		t.Errorf("rate = %v, expected 32.5", m.rate)
	}
	if m.appData.USDTWD != 32.5 || m.appData.LastRateDate != testToday {
		t.Errorf("fresh result must be cached, got %v / %q", m.appData.USDTWD, m.appData.LastRateDate)
	}

	// 快取已落地：重讀持久化檔必須看到同樣的值
	reloaded := loadAppDataFile(m.dataPath)
	if reloaded.USDTWD != 32.5 || reloaded.LastRateDate != testToday {
		t.Errorf("persisted cache mismatch: %v / %q", reloaded.USDTWD, reloaded.LastRateDate)
	}
}
