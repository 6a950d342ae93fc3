package main

import "testing"

func TestAddFutureExpenseGuards(t *testing.T) {
	tests := []struct {
		desc        string
		name        string
		amountInput string
		wantAdded   bool
	}{
		{"正常新增", "出國旅遊", "50000", true},
		{"小數金額", "保險費", "1234.5", true},
		{"名稱為空時拒絕", "", "50000", false},
		{"金額不是數字時拒絕", "出國旅遊", "abc", false},
		{"金額為空時拒絕", "出國旅遊", "", false},
	}

	for _, tt := range tests {
		m := newTestModel(t)
		before := len(m.appData.Cash.Future)

		added := m.addFutureExpense(tt.name, tt.amountInput)

		if added != tt.wantAdded {
			t.Errorf("%s: added = %v, expected %v", tt.desc, added, tt.wantAdded)
		}
		wantLen := before
		if tt.wantAdded {
			wantLen++
		}
		if len(m.appData.Cash.Future) != wantLen {
			t.Errorf("%s: len = %d, expected %d", tt.desc, len(m.appData.Cash.Future), wantLen)
		}
	}
}

func TestRemoveFutureExpenseKeepsOrder(t *testing.T) {
	m := newTestModel(t)
	m.addFutureExpense("甲", "100")
	m.addFutureExpense("乙", "200")
	m.addFutureExpense("丙", "300")

	// 刪掉中間那筆，其餘順序不變
	m.removeFutureExpense(1)

	future := m.appData.Cash.Future
	if len(future) != 2 {
		t.Fatalf("len = %d, expected 2", len(future))
	}
	if future[0].Name != "甲" || future[1].Name != "丙" {
		t.Errorf("order = %s, %s, expected 甲, 丙", future[0].Name, future[1].Name)
	}
}

func TestRemoveFutureExpenseOutOfRange(t *testing.T) {
	m := newTestModel(t)
	m.addFutureExpense("甲", "100")

	// 越界索引不得改變清單也不得 panic
	m.removeFutureExpense(-1)
	m.removeFutureExpense(5)

	if len(m.appData.Cash.Future) != 1 {
		t.Errorf("len = %d, expected 1", len(m.appData.Cash.Future))
	}
}

func TestCashGrandTotal(t *testing.T) {
	m := newTestModel(t)

	if got := m.cashGrandTotal(); got != 0 {
		t.Errorf("empty grand total = %v, expected 0", got)
	}

	m.updateBasic(30000)
	m.updateExtra(100000)
	m.addFutureExpense("出國旅遊", "50000")
	m.addFutureExpense("換電腦", "40000")

	// 30000 + 100000 + 50000 + 40000
	if got := m.cashGrandTotal(); !almostEqual(got, 220000) {
		t.Errorf("grand total = %v, expected 220000", got)
	}

	// 刪除後重算
	m.removeFutureExpense(0)
	if got := m.cashGrandTotal(); !almostEqual(got, 170000) {
		t.Errorf("grand total after remove = %v, expected 170000", got)
	}

	// 改基本開銷後重算
	m.updateBasic(25000)
	if got := m.cashGrandTotal(); !almostEqual(got, 165000) {
		t.Errorf("grand total after basic edit = %v, expected 165000", got)
	}
}

func TestCashMutationsPersist(t *testing.T) {
	m := newTestModel(t)

	m.updateBasic(30000)
	m.addFutureExpense("出國旅遊", "50000")

	reloaded := loadAppDataFile(m.dataPath)
	if reloaded.Cash.Basic != 30000 {
		t.Errorf("persisted basic = %v, expected 30000", reloaded.Cash.Basic)
	}
	if len(reloaded.Cash.Future) != 1 || reloaded.Cash.Future[0].Name != "出國旅遊" {
		t.Errorf("persisted future = %+v, expected 出國旅遊", reloaded.Cash.Future)
	}
}

func TestAdjustFutureScroll(t *testing.T) {
	m := newTestModel(t)
	m.config.Display.MaxLines = 3

	for i := 0; i < 10; i++ {
		m.appData.Cash.Future = append(m.appData.Cash.Future, FutureExpense{Name: "項目", Amount: 1})
	}

	// 游標移到窗口下緣以外時窗口要跟著下移
	m.futureCursor = 5
	m.adjustFutureScroll()
	if m.futureScrollPos != 3 {
		t.Errorf("scrollPos = %d, expected 3", m.futureScrollPos)
	}

	// 游標移回上方時窗口要跟著上移
	m.futureCursor = 1
	m.adjustFutureScroll()
	if m.futureScrollPos != 1 {
		t.Errorf("scrollPos = %d, expected 1", m.futureScrollPos)
	}
}
