package components

// Faction 阵营
type Faction int

const (
	// FactionNone 无阵营（野生/中立）
	FactionNone Faction = iota
	// FactionPlayer 玩家阵营
	FactionPlayer
	// FactionHostile 敌对阵营
	FactionHostile
)

// String 返回阵营名
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionHostile:
		return "hostile"
	default:
		return "none"
	}
}

// FactionComponent 实体所属阵营
type FactionComponent struct {
	Faction Faction
}
