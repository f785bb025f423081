package render

import "image/color"

// Cell colors used by the board front-end.
var (
	AliveColor        = color.RGBA{R: 51, G: 255, B: 51, A: 255}
	DeadColor         = color.RGBA{R: 0, G: 26, B: 77, A: 255}
	ClickedColor      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	HoveredAliveColor = color.RGBA{R: 51, G: 102, B: 255, A: 255}
	HoveredDeadColor  = color.RGBA{R: 179, G: 26, B: 26, A: 255}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
