package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的进度 ∈ [0, 1]

// EaseOutCubic 三次方缓出，开始快、结束慢
// f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 在 a 和 b 之间线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
