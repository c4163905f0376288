package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, exact for every product of two bytes.
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// Premultiply converts a row of straight-alpha RGBA8 pixels to
// premultiplied alpha in place.
func Premultiply(row []uint8) {
	for i := 0; i+3 < len(row); i += 4 {
		a := row[i+3]
		switch a {
		case 255:
			continue
		case 0:
			row[i], row[i+1], row[i+2] = 0, 0, 0
			continue
		}
		row[i] = mulDiv255(row[i], a)
		row[i+1] = mulDiv255(row[i+1], a)
		row[i+2] = mulDiv255(row[i+2], a)
	}
}

// SwapRB exchanges the red and blue channels of a row of 4-byte pixels,
// converting between RGBA and BGRA order.
func SwapRB(row []uint8) {
	for i := 0; i+3 < len(row); i += 4 {
		row[i], row[i+2] = row[i+2], row[i]
	}
}
