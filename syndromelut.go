package bch

// buildSyndromeLUT precomputes syndrome_lut[i][b] = XOR over bit positions
// p in [0,8) with bit p of b set, of alpha_to[(i*p) mod N], for i in
// [1, 2t] and b in [0, 256). Bit position p within a byte is numbered the
// same way the ECC byte-packing convention numbers it (bit p = coefficient
// of x^p within the byte's 8-bit group), so this table can be applied
// directly to ecc-diff bytes during byte-path syndrome computation.
func buildSyndromeLUT(gt *gfTables, t int) [][]int {
	lut := make([][]int, 2*t+1) // index 0 unused, valid range [1, 2t]
	for i := 1; i <= 2*t; i++ {
		row := make([]int, 256)
		for b := 0; b < 256; b++ {
			var acc int
			for p := 0; p < 8; p++ {
				if b&(1<<uint(p)) != 0 {
					acc ^= gt.alphaTo[gt.modn(i*p)]
				}
			}
			row[b] = acc
		}
		lut[i] = row
	}
	return lut
}
