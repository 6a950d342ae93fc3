package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// localePrinter 千分位數字格式化（對應瀏覽器 toLocaleString 的呈現）
var localePrinter = message.NewPrinter(language.English)

// ============================================================================
// 金額格式化
// ============================================================================

// formatMoney 千分位、無小數（總額類顯示）
func formatMoney(v float64) string {
	return localePrinter.Sprintf("%.0f", v)
}

// formatMoney2 千分位、兩位小數
func formatMoney2(v float64) string {
	return localePrinter.Sprintf("%.2f", v)
}

// formatShares 股數顯示：整數不帶小數，半股之類保留實際位數
func formatShares(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ============================================================================
// 盈虧格式化 - 支援多語言顏色方案
// 中文：紅漲綠跌 | 英文：綠漲紅跌
// ============================================================================

// formatProfitWithColorLang 格式化盈虧金額（帶顏色）
func (m *Model) formatProfitWithColorLang(profit float64) string {
	if m.language == English {
		if profit >= 0 {
			return text.FgGreen.Sprintf("+%.2f", profit)
		}
		return text.FgRed.Sprintf("%.2f", profit)
	}
	if profit >= 0 {
		return text.FgRed.Sprintf("+%.2f", profit)
	}
	return text.FgGreen.Sprintf("%.2f", profit)
}

// formatProfitWithColorZeroLang 格式化盈虧金額（接近零時不上色）
func (m *Model) formatProfitWithColorZeroLang(profit float64) string {
	if abs(profit) < 0.001 {
		return fmt.Sprintf("%.2f", profit)
	}
	return m.formatProfitWithColorLang(profit)
}

// abs 浮點數絕對值
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
