package mousefilter

import (
	"image"
)

// Pixels the pointer can move without being considered a move (ex: a click with a small hand shake).
const MoveMargin = 3

func DetectMove(press, p image.Point) bool {
	r := image.Rectangle{press, press}.Inset(-MoveMargin)
	return !p.In(r)
}
