package idea

const mulModulus = 0x10001

func add16(x uint16, y uint16) uint16 {
	return x + y
}

func addInverse16(x uint16) uint16 {
	return uint16(0x10000 - uint32(x))
}

// mul multiplies modulo 2^16+1 where the value 0 stands for 2^16.
func mul(x uint16, y uint16) uint16 {
	p := uint32(x) * uint32(y)
	if p != 0 {
		return uint16(p % mulModulus)
	}
	return 1 - x - y
}

func mulInverse(x uint16) uint16 {
	if x <= 1 {
		return x
	}
	var t0, t1 uint32 = 1, 0
	a, y := uint32(x), uint32(mulModulus)
	for {
		t1 += y / a * t0
		y %= a
		if y == 1 {
			return uint16(1 - t1)
		}
		t0 += a / y * t1
		a %= y
		if a == 1 {
			return uint16(t0)
		}
	}
}
