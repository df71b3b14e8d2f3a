package systems

// SoundPlayer 音效播放接口
// game.AudioManager 实现此接口；为 nil 时系统静默运行
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

func playSound(p SoundPlayer, soundID string) {
	if p != nil && soundID != "" {
		p.PlaySound(soundID)
	}
}
