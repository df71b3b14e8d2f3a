package grid

import (
	"log"
	"math"
	"sort"
)

// MaxRadialPatternRadius 径向表覆盖的最大半径（格）
//
// 所有圆形范围计算（护盾覆盖、范围效果）都必须走同一张表，
// 否则视觉范围与玩法范围会出现偏差。
const MaxRadialPatternRadius = 56.4

var (
	// radialPattern 按到原点距离升序排列的格子偏移
	radialPattern []Cell
	// radialDistSq 与 radialPattern 一一对应的距离平方
	radialDistSq []int
)

func init() {
	buildRadialPattern()
}

// buildRadialPattern 生成径向格子表
func buildRadialPattern() {
	limit := int(math.Ceil(MaxRadialPatternRadius))
	maxSq := MaxRadialPatternRadius * MaxRadialPatternRadius

	cells := make([]Cell, 0, (2*limit+1)*(2*limit+1))
	for x := -limit; x <= limit; x++ {
		for z := -limit; z <= limit; z++ {
			c := Cell{X: x, Z: z}
			if float64(c.LengthHorizontalSquared()) <= maxSq {
				cells = append(cells, c)
			}
		}
	}

	// 距离相同的格子按坐标排序，保证遍历顺序确定
	sort.Slice(cells, func(i, j int) bool {
		di, dj := cells[i].LengthHorizontalSquared(), cells[j].LengthHorizontalSquared()
		if di != dj {
			return di < dj
		}
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Z < cells[j].Z
	})

	radialPattern = cells
	radialDistSq = make([]int, len(cells))
	for i, c := range cells {
		radialDistSq[i] = c.LengthHorizontalSquared()
	}
}

// RadialPatternCount 径向表中的格子总数
func RadialPatternCount() int {
	return len(radialPattern)
}

// NumCellsInRadius 返回距中心不超过 radius 的格子数（含中心格）
//
// 半径 0 返回 1，负半径返回 0。超出表范围时记录警告并返回整张表的格子数。
func NumCellsInRadius(radius float64) int {
	if radius < 0 {
		return 0
	}
	if radius > MaxRadialPatternRadius {
		log.Printf("[Radial] Warning: radius %.2f exceeds radial pattern max %.2f", radius, MaxRadialPatternRadius)
		return len(radialPattern)
	}
	rSq := radius * radius
	return sort.Search(len(radialDistSq), func(i int) bool {
		return float64(radialDistSq[i]) > rSq
	})
}

// RadialCellsAround 返回以 center 为圆心、半径 radius 内的格子
//
// 结果与 NumCellsInRadius 使用同一张表，useCenter 为 false 时不包含中心格。
func RadialCellsAround(center Cell, radius float64, useCenter bool) []Cell {
	count := NumCellsInRadius(radius)
	start := 0
	if !useCenter {
		start = 1
	}
	if count <= start {
		return nil
	}

	cells := make([]Cell, 0, count-start)
	for i := start; i < count; i++ {
		cells = append(cells, center.Add(radialPattern[i]))
	}
	return cells
}
