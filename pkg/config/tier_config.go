package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/decker502/mergebox/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultTierConfigPath 等级表配置文件路径
const DefaultTierConfigPath = "data/tiers.yaml"

var (
	// ErrEmptyTierTable 等级表为空
	ErrEmptyTierTable = errors.New("tier table must contain at least one tier")
	// ErrTierTableNotInitialized 在 InitTierTable 之前访问全局等级表
	ErrTierTableNotInitialized = errors.New("tier table not initialized, call InitTierTable first")
)

// Tier 单个等级的定义（不可变）
type Tier struct {
	Radius   float64    // 碰撞圆半径（世界单位）
	Mass     float64    // 质量（千克）
	VisualID string     // 视觉标识
	Color    color.RGBA // 渲染颜色
}

// TierDef 等级配置（YAML 格式）
type TierDef struct {
	Visual string  `yaml:"visual"`
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	Color  string  `yaml:"color"` // "#rrggbb"
}

// TierTableConfig 等级表配置文件结构
//
// 配置文件位置: data/tiers.yaml
type TierTableConfig struct {
	Tiers []TierDef `yaml:"tiers"`
}

// TierTable 有序的等级表
// 启动时加载一次，之后只读，可安全地并发读取
type TierTable struct {
	tiers []Tier
}

// NewTierTable 从等级列表创建等级表并验证
//
// 约束：
//   - 至少一个等级
//   - 半径、质量为正，且半径严格递增
//   - 视觉标识唯一
func NewTierTable(tiers []Tier) (*TierTable, error) {
	if len(tiers) == 0 {
		return nil, ErrEmptyTierTable
	}

	seen := make(map[string]int, len(tiers))
	for i, t := range tiers {
		if t.Radius <= 0 {
			return nil, fmt.Errorf("tier %d: radius must be positive, got %.2f", i, t.Radius)
		}
		if t.Mass <= 0 {
			return nil, fmt.Errorf("tier %d: mass must be positive, got %.2f", i, t.Mass)
		}
		if i > 0 && t.Radius <= tiers[i-1].Radius {
			return nil, fmt.Errorf("tier %d: radius %.2f must be larger than tier %d radius %.2f",
				i, t.Radius, i-1, tiers[i-1].Radius)
		}
		if t.VisualID == "" {
			return nil, fmt.Errorf("tier %d: visual id is empty", i)
		}
		if prev, dup := seen[t.VisualID]; dup {
			return nil, fmt.Errorf("tier %d: visual id %q already used by tier %d", i, t.VisualID, prev)
		}
		seen[t.VisualID] = i
	}

	copied := make([]Tier, len(tiers))
	copy(copied, tiers)
	return &TierTable{tiers: copied}, nil
}

// DefaultTierTable 返回内置的三级等级表（白、绿、蓝）
func DefaultTierTable() *TierTable {
	table, err := NewTierTable([]Tier{
		{Radius: 10, Mass: 1.0, VisualID: "white", Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{Radius: 15, Mass: 2.25, VisualID: "green", Color: color.RGBA{R: 0x33, G: 0xcc, B: 0x33, A: 0xff}},
		{Radius: 20, Mass: 4.0, VisualID: "blue", Color: color.RGBA{R: 0x33, G: 0x66, B: 0xff, A: 0xff}},
	})
	if err != nil {
		panic(err)
	}
	return table
}

// Len 返回等级数量 N
func (tt *TierTable) Len() int {
	return len(tt.tiers)
}

// TierAt 返回第 i 级的定义
// i 越界属于程序错误，直接 panic
func (tt *TierTable) TierAt(i types.TierIndex) Tier {
	if i < 0 || int(i) >= len(tt.tiers) {
		panic(fmt.Sprintf("tier index %d out of range [0, %d)", i, len(tt.tiers)))
	}
	return tt.tiers[i]
}

// NextTier 返回合并后的等级
// 终极等级没有下一级，返回 false
func (tt *TierTable) NextTier(i types.TierIndex) (types.TierIndex, bool) {
	next := i + 1
	if i < 0 || int(next) >= len(tt.tiers) {
		return 0, false
	}
	return next, true
}

// IsTerminal 判断是否为终极等级（N-1）
func (tt *TierTable) IsTerminal(i types.TierIndex) bool {
	return int(i) == len(tt.tiers)-1
}

// Terminal 返回终极等级索引
func (tt *TierTable) Terminal() types.TierIndex {
	return types.TierIndex(len(tt.tiers) - 1)
}

// ParseTierTable 解析 YAML 格式的等级表
func ParseTierTable(data []byte) (*TierTable, error) {
	var cfg TierTableConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tier config: %w", err)
	}

	tiers := make([]Tier, 0, len(cfg.Tiers))
	for i, def := range cfg.Tiers {
		c, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("tier %d: %w", i, err)
		}
		tiers = append(tiers, Tier{
			Radius:   def.Radius,
			Mass:     def.Mass,
			VisualID: def.Visual,
			Color:    c,
		})
	}

	table, err := NewTierTable(tiers)
	if err != nil {
		return nil, fmt.Errorf("invalid tier config: %w", err)
	}
	return table, nil
}

// LoadTierTable 从指定路径加载等级表
//
// 参数:
//   - path: 配置文件路径（如 "data/tiers.yaml"）
//
// 返回:
//   - *TierTable: 验证通过的等级表
//   - error: 读取、解析或验证失败
func LoadTierTable(path string) (*TierTable, error) {
	data, err := readConfigData(path)
	if err != nil {
		return nil, err
	}
	table, err := ParseTierTable(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded %d tiers from %s", table.Len(), path)
	return table, nil
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ========================================
// 全局等级表
// ========================================

var globalTiers atomic.Pointer[TierTable]

// InitTierTable 在启动阶段设置全局等级表
// 游戏循环开始后不应再调用
func InitTierTable(table *TierTable) {
	if table == nil {
		panic(ErrEmptyTierTable)
	}
	globalTiers.Store(table)
}

// Tiers 返回全局等级表
// 未初始化属于启动前置条件错误，直接 panic
func Tiers() *TierTable {
	table := globalTiers.Load()
	if table == nil {
		panic(ErrTierTableNotInitialized)
	}
	return table
}
