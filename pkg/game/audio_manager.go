package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "github.com/decker502/mergebox/internal/audio"
	"github.com/decker502/mergebox/pkg/config"
	"github.com/decker502/mergebox/pkg/types"
)

// mergeToneDuration 合并提示音时长
const mergeToneDuration = 120 * time.Millisecond

// AudioManager 音频管理器
// 职责：
//   - 合成并缓存每个等级的合并提示音
//   - 统一应用音量与开关设置
//
// audio.Context 为 nil 或音效关闭时，所有播放请求静默忽略
type AudioManager struct {
	context *audio.Context
	enabled bool
	volume  float64
	tones   map[types.TierIndex][]byte // 等级 -> PCM 数据
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（可为 nil，表示无音频设备）
//   - cfg: 音效配置
//   - tierCount: 等级数量，为每个等级预先合成提示音
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig, tierCount int) *AudioManager {
	am := &AudioManager{
		context: ctx,
		enabled: cfg.Enabled,
		volume:  cfg.Volume,
		tones:   make(map[types.TierIndex][]byte, tierCount),
	}

	if ctx == nil || !cfg.Enabled {
		log.Printf("[AudioManager] Audio disabled")
		return am
	}

	for i := 0; i < tierCount; i++ {
		am.tones[types.TierIndex(i)] = sfx.GenerateTone(sfx.MergeFrequency(i), mergeToneDuration, ctx.SampleRate())
	}
	log.Printf("[AudioManager] Synthesized %d merge tones", tierCount)
	return am
}

// PlayMergeSound 播放合并提示音
//
// 参数：
//   - tier: 合并产出的等级，音高随等级升高
//
// 返回：
//   - bool: 是否实际播放
func (am *AudioManager) PlayMergeSound(tier types.TierIndex) bool {
	if am == nil || am.context == nil || !am.enabled {
		return false
	}

	pcm, ok := am.tones[tier]
	if !ok || len(pcm) == 0 {
		log.Printf("[AudioManager] Warning: No merge tone for %s", tier)
		return false
	}

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(am.volume)
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量
//
// 参数：
//   - volume: 音量值，会被限制在 0.0 ~ 1.0 范围内
func (am *AudioManager) SetSoundVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	am.volume = volume
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.volume
}

// SetEnabled 开关音效
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled 音效是否可用（有音频上下文且已开启）
func (am *AudioManager) IsEnabled() bool {
	return am != nil && am.context != nil && am.enabled
}
