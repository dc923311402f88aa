package components

import "github.com/decker502/mergebox/pkg/types"

// BallComponent 标记实体为场上的球
// 只有拥有此组件的实体才参与合并判定，墙壁、地板、天花板没有此组件
type BallComponent struct {
	Tier types.TierIndex
}
