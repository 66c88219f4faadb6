// Package status 從已讀出的資料推導會員與費用狀態。
// 所有函式都是純函式，today 由呼叫端注入，不讀系統時間。
package status

import "time"

// DateLayout 為 API 上的日期格式
const DateLayout = "2006-01-02"

// Day 取 t 在自身時區的年月日，轉成 UTC 午夜
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthStart 回傳 t 所在月份第一天 (UTC 午夜)
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// FormatDate 把可為 nil 的日期轉成 YYYY-MM-DD
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
