// Package audio 提供程序内合成的音效
//
// 游戏不依赖外部音频资源，合并提示音在启动时按等级合成为 PCM 数据，
// 由 ebiten/audio 直接播放。
package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// bytesPerFrame 16 位立体声每帧字节数
const bytesPerFrame = 4

// GenerateTone 生成一段衰减正弦音
// 输出为 16 位有符号小端立体声 PCM（ebiten/audio 的原生格式）
//
// 参数:
//   - freq: 频率（Hz）
//   - duration: 时长
//   - sampleRate: 采样率（Hz）
//
// 返回:
//   - []byte: PCM 数据；参数无效时返回 nil
func GenerateTone(freq float64, duration time.Duration, sampleRate int) []byte {
	if freq <= 0 || duration <= 0 || sampleRate <= 0 {
		return nil
	}

	frames := int(duration.Seconds() * float64(sampleRate))
	if frames == 0 {
		return nil
	}
	buf := make([]byte, frames*bytesPerFrame)

	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		// 二次衰减包络，结尾归零避免爆音
		env := 1 - float64(i)/float64(frames)
		env *= env
		v := int16(math.Sin(2*math.Pi*freq*t) * env * math.MaxInt16)

		off := i * bytesPerFrame
		binary.LittleEndian.PutUint16(buf[off:], uint16(v))
		binary.LittleEndian.PutUint16(buf[off+2:], uint16(v))
	}
	return buf
}

// MergeFrequency 合并提示音的频率
// 从 A4 开始，每升一级升高一个大三度
func MergeFrequency(tier int) float64 {
	const base = 440.0
	return base * math.Pow(2, float64(tier)*4/12)
}
