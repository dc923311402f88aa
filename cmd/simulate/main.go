// simulate 无窗口运行游戏场景：按固定间隔在随机位置投放球，结束后打印各等级球数
//
// 用法（在项目根目录运行）:
//
//	go run ./cmd/simulate -drops 40 -interval 30 -seed 7
//	go run ./cmd/simulate -tiers data/tiers_coins.yaml -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/mergebox/pkg/components"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/ecs"
	"github.com/decker502/mergebox/pkg/embedded"
	"github.com/decker502/mergebox/pkg/scenes"
	"github.com/decker502/mergebox/pkg/types"
	"github.com/decker502/mergebox/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", config.DefaultGameConfigPath, "游戏配置文件路径")
	tiersPath  = flag.String("tiers", config.DefaultTierConfigPath, "等级表文件路径")
	drops      = flag.Int("drops", 30, "投放次数")
	interval   = flag.Int("interval", 45, "两次投放之间的帧数")
	settle     = flag.Int("settle", 300, "最后一次投放后继续模拟的帧数")
	seed       = flag.Int64("seed", 1, "随机种子")
)

// randomDropper 每隔 interval 帧在随机 X 处点击一次
type randomDropper struct {
	rng      *rand.Rand
	frame    int
	interval int
	remain   int
	width    float64
}

func (d *randomDropper) Pointer() utils.PointerState {
	defer func() { d.frame++ }()
	x := (d.rng.Float64() - 0.5) * d.width
	click := d.remain > 0 && d.frame%d.interval == 0
	if click {
		d.remain--
	}
	return utils.PointerState{World: types.Vec2{X: x}, HasPosition: true, JustPressed: click}
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *interval <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -interval must be positive")
		os.Exit(2)
	}

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
	config.InitTierTable(tiers)

	dropper := &randomDropper{
		rng:      rand.New(rand.NewSource(*seed)),
		interval: *interval,
		remain:   *drops,
		width:    cfg.Box.Width,
	}
	camera := utils.NewCamera(cfg.Window.Width, cfg.Window.Height, cfg.Camera.Zoom)
	scene, err := scenes.NewGameScene(cfg, config.Tiers(), nil, dropper, camera, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frames := (*drops)*(*interval) + *settle
	dt := 1.0 / 60.0
	for i := 0; i < frames; i++ {
		scene.Update(dt)
	}

	em := scene.EntityManager()
	counts := make([]int, tiers.Len())
	for _, id := range ecs.GetEntitiesWith1[*components.BallComponent](em) {
		ball, _ := ecs.GetComponent[*components.BallComponent](em, id)
		counts[ball.Tier]++
	}

	fmt.Printf("Simulated %d frames (%.1fs), %d drops, %d merges\n", frames, float64(frames)*dt, *drops, scene.MergeCount())
	for i, n := range counts {
		fmt.Printf("  [%d] %-10s %d\n", i, tiers.TierAt(types.TierIndex(i)).VisualID, n)
	}
}
