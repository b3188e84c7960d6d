// Package validators 預約表單與客戶資料的欄位驗證
package validators

import (
	"regexp"
	"time"
)

// 兩個電話規則來自不同表單，刻意分開保留，不要合併
const (
	PhoneStrictPattern  = `^[0-9]{10}$`
	PhoneLoosePattern   = `^[0-9+\-\s()]+$`
	EmailPattern        = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	IdentityCardPattern = `^[0-9]{9,12}$`
)

const DateLayout = "2006-01-02"

var (
	phoneStrictRegex  = regexp.MustCompile(PhoneStrictPattern)
	phoneLooseRegex   = regexp.MustCompile(PhoneLoosePattern)
	emailRegex        = regexp.MustCompile(EmailPattern)
	identityCardRegex = regexp.MustCompile(IdentityCardPattern)
)

// IsPhoneStrict 剛好 10 位數字（訂金表單、客戶資料）
func IsPhoneStrict(s string) bool { return phoneStrictRegex.MatchString(s) }

// IsPhoneLoose 數字、空白、+ - ( )（試駕表單）
func IsPhoneLoose(s string) bool { return phoneLooseRegex.MatchString(s) }

func IsEmail(s string) bool { return emailRegex.MatchString(s) }

// IsIdentityCard 9 到 12 位數字
func IsIdentityCard(s string) bool { return identityCardRegex.MatchString(s) }

// ParseDate 接受 YYYY-MM-DD 或 RFC 3339，回傳在 loc 時區的日曆日（午夜）
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

// NotBeforeToday 日期不得早於今天，同一天允許
func NotBeforeToday(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !date.Before(today)
}
