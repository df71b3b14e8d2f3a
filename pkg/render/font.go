package render

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var labelFaces = map[float64]text.Face{}

// LabelFace 返回指定字号的 UI 标签字体（按字号缓存）
// 使用内置的 Go Regular 字体，解析失败时退回 basicfont 7x13
func LabelFace(size float64) text.Face {
	if face, ok := labelFaces[size]; ok {
		return face
	}

	face := loadLabelFace(size)
	labelFaces[size] = face
	return face
}

func loadLabelFace(size float64) text.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("[Render] Warning: Failed to parse label font: %v (using basicfont)", err)
		return text.NewGoXFace(basicfont.Face7x13)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("[Render] Warning: Failed to create label face: %v (using basicfont)", err)
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return text.NewGoXFace(face)
}
