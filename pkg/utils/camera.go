package utils

import "github.com/decker502/mergebox/pkg/types"

// Camera 世界坐标与屏幕坐标之间的变换
//
// 世界坐标：盒子中心为原点，Y 轴向上，单位为世界单位。
// 屏幕坐标：逻辑屏幕左上角为原点，Y 轴向下，单位为像素。
//
//	screenX = ScreenWidth/2  + world.X * Zoom
//	screenY = ScreenHeight/2 - world.Y * Zoom
type Camera struct {
	ScreenWidth  int
	ScreenHeight int
	Zoom         float64 // 每个世界单位对应的屏幕像素数
}

// NewCamera 创建摄像机，zoom <= 0 时按 1 处理
func NewCamera(screenWidth, screenHeight int, zoom float64) Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return Camera{ScreenWidth: screenWidth, ScreenHeight: screenHeight, Zoom: zoom}
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (c Camera) WorldToScreen(p types.Vec2) (float64, float64) {
	return float64(c.ScreenWidth)/2 + p.X*c.Zoom,
		float64(c.ScreenHeight)/2 - p.Y*c.Zoom
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (c Camera) ScreenToWorld(x, y float64) types.Vec2 {
	return types.Vec2{
		X: (x - float64(c.ScreenWidth)/2) / c.Zoom,
		Y: (float64(c.ScreenHeight)/2 - y) / c.Zoom,
	}
}

// WorldLength 世界长度 → 屏幕长度
func (c Camera) WorldLength(l float64) float64 {
	return l * c.Zoom
}

// ScreenContains 判断屏幕坐标是否位于逻辑屏幕内
func (c Camera) ScreenContains(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.ScreenWidth && y < c.ScreenHeight
}
