package render

import "image/color"

type rgba [4]uint8

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func (c rgba) put(buf []byte, i int) {
	base := i * 4
	buf[base+0] = c[0]
	buf[base+1] = c[1]
	buf[base+2] = c[2]
	buf[base+3] = c[3]
}

// fillBinaryRGBA converts every cell into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	cOn, cOff := toRGBA(on), toRGBA(off)
	for i, alive := range cells {
		if alive {
			cOn.put(buf, i)
			continue
		}
		cOff.put(buf, i)
	}
}

// patchBinaryRGBA rewrites only the pixels at the listed cell indices.
func patchBinaryRGBA(buf []byte, cells []bool, changed []int, on, off color.Color) {
	cOn, cOff := toRGBA(on), toRGBA(off)
	for _, i := range changed {
		if cells[i] {
			cOn.put(buf, i)
			continue
		}
		cOff.put(buf, i)
	}
}

// fillChangesRGBA paints births and deaths from the tracker and clears every
// other pixel to transparent.
func fillChangesRGBA(buf []byte, cells []bool, changed []int, born, died color.Color) {
	clear(buf)
	cBorn, cDied := toRGBA(born), toRGBA(died)
	for _, i := range changed {
		if cells[i] {
			cBorn.put(buf, i)
			continue
		}
		cDied.put(buf, i)
	}
}
