package types

import "fmt"

// TierIndex 球的等级索引
// 0 为最小等级（玩家可直接生成），N-1 为终极等级（不再合并）
type TierIndex int

// String 返回等级的字符串表示
func (t TierIndex) String() string {
	return fmt.Sprintf("tier-%d", int(t))
}
