// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/mergebox/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 存储当前帧的指针状态（世界坐标）
// 用于统一处理鼠标和触摸输入
type PointerState struct {
	// World 指针的世界坐标，仅在 HasPosition 为 true 时有效
	World types.Vec2
	// HasPosition 指针是否位于窗口内
	HasPosition bool
	// JustPressed 主按钮（鼠标左键或触摸）是否在本帧刚刚按下
	JustPressed bool
}

// PointerSource 每帧提供一次指针状态
type PointerSource interface {
	Pointer() PointerState
}

// EbitenPointer 基于 ebiten 输入轮询的指针来源
type EbitenPointer struct {
	Camera    Camera
	touchOnly bool
}

// NewEbitenPointer 创建指针来源
// 移动端只读取触摸输入
func NewEbitenPointer(camera Camera) *EbitenPointer {
	return &EbitenPointer{Camera: camera, touchOnly: IsMobile()}
}

// Pointer 获取当前帧的指针状态
// 同时支持鼠标和触摸输入，优先检测触摸；光标离开窗口时没有位置
func (p *EbitenPointer) Pointer() PointerState {
	// 首先检查触摸输入（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return p.resolve(x, y, true)
	}
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return p.resolve(x, y, false)
	}

	// 移动端没有悬停光标，手指离开屏幕即没有位置
	if p.touchOnly {
		return PointerState{}
	}

	// 其次检查鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	return p.resolveCursor(x, y, ebiten.IsFocused(), inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
}

// resolveCursor 处理鼠标光标
// 光标从窗口边缘离开后 CursorPosition 可能停留在窗口内的最后位置，
// 因此窗口失去焦点时同样视为没有位置
func (p *EbitenPointer) resolveCursor(x, y int, focused, pressed bool) PointerState {
	if !focused {
		return PointerState{}
	}
	return p.resolve(x, y, pressed)
}

// resolve 将屏幕坐标转换为指针状态
func (p *EbitenPointer) resolve(x, y int, pressed bool) PointerState {
	if !p.Camera.ScreenContains(x, y) {
		return PointerState{}
	}
	return PointerState{
		World:       p.Camera.ScreenToWorld(float64(x), float64(y)),
		HasPosition: true,
		JustPressed: pressed,
	}
}
