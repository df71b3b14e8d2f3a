package modules

import "github.com/decker502/radial-shield/pkg/grid"

type stubHost struct {
	player bool
}

func (h *stubHost) Position() grid.Cell { return grid.Cell{} }
func (h *stubHost) IsPlayerOwned() bool { return h.player }
