package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/decker502/radial-shield/pkg/shield"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// toneSpec 合成音效参数
type toneSpec struct {
	Frequency float64 // 基频（Hz）
	Duration  float64 // 时长（秒）
	Decay     float64 // 指数衰减系数，越大衰减越快
}

// 内置音效：资源包不包含音频文件，全部在运行时合成
var builtinTones = map[string]toneSpec{
	shield.SoundClick: {Frequency: 1800, Duration: 0.04, Decay: 90},
	SoundShieldHit:    {Frequency: 320, Duration: 0.12, Decay: 30},
	SoundShieldBreak:  {Frequency: 110, Duration: 0.45, Decay: 8},
}

// 护盾音效ID
const (
	SoundShieldHit   = "ShieldHit"
	SoundShieldBreak = "ShieldBreak"
)

// AudioManager 音频管理器
// 职责：
//   - 合成并缓存内置音效
//   - 应用 SettingsManager 中的音量与开关
//
// audioContext 为 nil 时进入静音模式，所有播放请求返回 false。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager         // 可为 nil
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音模式）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.audioContext == nil {
		return false
	}

	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	spec, ok := builtinTones[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	pcm := synthesizeTone(spec, am.audioContext.SampleRate())
	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// synthesizeTone 生成衰减正弦波
// 输出格式为 ebiten 默认的 16 位有符号小端、双声道 PCM
func synthesizeTone(spec toneSpec, sampleRate int) []byte {
	samples := int(spec.Duration * float64(sampleRate))
	if samples <= 0 {
		return nil
	}

	pcm := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		amp := math.Exp(-spec.Decay*t) * math.Sin(2*math.Pi*spec.Frequency*t)
		v := uint16(int16(amp * 0.6 * math.MaxInt16))
		binary.LittleEndian.PutUint16(pcm[i*4:], v)
		binary.LittleEndian.PutUint16(pcm[i*4+2:], v)
	}
	return pcm
}
