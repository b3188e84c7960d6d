// Package compare 比較清單：最多三台車，依加入順序排列
package compare

import "evdealer/models"

// MaxSize 比較清單上限
const MaxSize = 3

// Set 依 ID 判斷成員的有序車輛清單
type Set []models.Vehicle

// Outcome Toggle 的結果，供介面顯示提示
type Outcome int

const (
	Added Outcome = iota
	Removed
	Full
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Full:
		return "full"
	}
	return "unknown"
}

// Toggle 已在清單中則移除；否則未滿時加到最後，已滿則原樣回傳。
// 不會修改傳入的 set。
func Toggle(set Set, v models.Vehicle) (Set, Outcome) {
	if i := set.indexOf(v.ID); i >= 0 {
		next := make(Set, 0, len(set)-1)
		next = append(next, set[:i]...)
		next = append(next, set[i+1:]...)
		return next, Removed
	}
	if len(set) >= MaxSize {
		return set, Full
	}
	next := make(Set, 0, len(set)+1)
	next = append(next, set...)
	next = append(next, v)
	return next, Added
}

// Clear 回傳空清單
func Clear(Set) Set {
	return Set{}
}

func (s Set) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

func (s Set) Full() bool {
	return len(s) >= MaxSize
}

// IDs 依順序回傳成員 ID
func (s Set) IDs() []string {
	ids := make([]string, len(s))
	for i, v := range s {
		ids[i] = v.ID
	}
	return ids
}

func (s Set) indexOf(id string) int {
	for i, v := range s {
		if v.ID == id {
			return i
		}
	}
	return -1
}
