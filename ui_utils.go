package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 文本編輯輔助函數（光標以 rune 為單位移動）
// ============================================================================

// insertStringAtCursor 在光標位置插入字串
func insertStringAtCursor(text string, cursor int, insert string) (string, int) {
	runes := []rune(text)
	insertRunes := []rune(insert)

	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	newRunes := make([]rune, len(runes)+len(insertRunes))
	copy(newRunes[:cursor], runes[:cursor])
	copy(newRunes[cursor:cursor+len(insertRunes)], insertRunes)
	copy(newRunes[cursor+len(insertRunes):], runes[cursor:])

	return string(newRunes), cursor + len(insertRunes)
}

// deleteRuneBeforeCursor 刪除光標前的字符（退格鍵）
func deleteRuneBeforeCursor(text string, cursor int) (string, int) {
	runes := []rune(text)
	if cursor <= 0 || len(runes) == 0 {
		return text, cursor
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	newRunes := make([]rune, len(runes)-1)
	copy(newRunes[:cursor-1], runes[:cursor-1])
	copy(newRunes[cursor-1:], runes[cursor:])

	return string(newRunes), cursor - 1
}

// deleteRuneAtCursor 刪除光標處的字符（Delete鍵）
func deleteRuneAtCursor(text string, cursor int) (string, int) {
	runes := []rune(text)
	if cursor < 0 || cursor >= len(runes) || len(runes) == 0 {
		return text, cursor
	}

	newRunes := make([]rune, len(runes)-1)
	copy(newRunes[:cursor], runes[:cursor])
	copy(newRunes[cursor:], runes[cursor+1:])

	return string(newRunes), cursor
}

// formatTextWithCursor 在光標位置插入光標符號供顯示
func formatTextWithCursor(text string, cursor int) string {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	if cursor == len(runes) {
		return text + "│"
	}

	before := string(runes[:cursor])
	after := string(runes[cursor:])
	return before + "│" + after
}

// handleTextInput 通用輸入處理：光標移動與文本編輯
func handleTextInput(msg tea.KeyMsg, text *string, cursor *int) bool {
	switch msg.String() {
	case "left", "ctrl+b":
		if *cursor > 0 {
			*cursor--
		}
		return true
	case "right", "ctrl+f":
		runes := []rune(*text)
		if *cursor < len(runes) {
			*cursor++
		}
		return true
	case "home", "ctrl+a":
		*cursor = 0
		return true
	case "end", "ctrl+e":
		*cursor = len([]rune(*text))
		return true
	case "backspace":
		*text, *cursor = deleteRuneBeforeCursor(*text, *cursor)
		return true
	case "delete", "ctrl+d":
		*text, *cursor = deleteRuneAtCursor(*text, *cursor)
		return true
	default:
		str := msg.String()
		if len(str) > 0 && str != "\n" && str != "\r" && !isControlKey(str) {
			*text, *cursor = insertStringAtCursor(*text, *cursor, str)
			return true
		}
	}
	return false
}

// isControlKey 檢查是否為控制鍵
func isControlKey(str string) bool {
	if len(str) == 0 {
		return true
	}

	controlKeys := []string{
		"ctrl+c", "ctrl+d", "ctrl+z", "ctrl+l", "ctrl+r",
		"alt+", "cmd+", "shift+", "ctrl+",
		"up", "down", "left", "right",
		"home", "end", "pgup", "pgdown",
		"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
		"insert", "delete", "tab", "enter", "backspace", "esc",
	}

	for _, key := range controlKeys {
		if strings.HasPrefix(strings.ToLower(str), key) {
			return true
		}
	}

	// 單字符的控制字符（ASCII < 32）
	if len(str) == 1 {
		r := rune(str[0])
		if r < 32 && r != '\t' {
			return true
		}
	}

	return false
}
