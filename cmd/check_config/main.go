// check_config 校验游戏配置与等级表，并打印派生出的盒子几何
//
// 用法（在项目根目录运行）:
//
//	go run ./cmd/check_config
//	go run ./cmd/check_config -config my_game.yaml -tiers data/tiers_coins.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/embedded"
	"github.com/decker502/mergebox/pkg/types"
)

func main() {
	configPath := flag.String("config", config.DefaultGameConfigPath, "游戏配置文件路径")
	tiersPath := flag.String("tiers", config.DefaultTierConfigPath, "等级表文件路径")
	flag.Parse()

	embedded.Init(os.DirFS("."))

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tiers, err := config.LoadTierTable(*tiersPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Config %s: OK\n", *configPath)
	fmt.Printf("Tiers %s: OK (%d tiers)\n", *tiersPath, tiers.Len())
	for i := 0; i < tiers.Len(); i++ {
		tier := tiers.TierAt(types.TierIndex(i))
		fmt.Printf("  [%d] %-10s radius=%-5.1f mass=%-6.2f color=#%02x%02x%02x\n",
			i, tier.VisualID, tier.Radius, tier.Mass, tier.Color.R, tier.Color.G, tier.Color.B)
	}

	box := &components.GameBoxComponent{
		Width:         cfg.Box.Width,
		Height:        cfg.Box.Height,
		WallThickness: cfg.Box.WallThickness,
	}
	fmt.Printf("Box %.0fx%.0f wall=%.1f\n", box.Width, box.Height, box.WallThickness)
	fmt.Printf("  inner x: [%.1f, %.1f]  ceiling outer y: %.1f  spawn y: %.1f\n",
		box.LeftInnerX(), box.RightInnerX(), box.CeilingOuterY(), box.CeilingOuterY()+cfg.Box.SpawnOffset)
	for _, kind := range types.AllBoundaryKinds {
		shape := box.BoundaryGeometry(kind)
		fmt.Printf("  %-8s center=(%.1f, %.1f) half=(%.1f, %.1f) sensor=%v\n",
			kind, shape.Center.X, shape.Center.Y, shape.HalfExtents.X, shape.HalfExtents.Y, shape.Sensor)
	}

	// 最大的球必须能放进盒子
	if widest := 2 * tiers.TierAt(tiers.Terminal()).Radius; widest > box.RightInnerX()-box.LeftInnerX() {
		fmt.Fprintf(os.Stderr, "Warning: terminal tier (diameter %.1f) is wider than the box interior\n", widest)
	}
}
