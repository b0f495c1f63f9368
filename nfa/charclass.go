package nfa

// compileByteRange builds a two-state fragment that transitions on
// every byte in the inclusive range [lo, hi], per spec.md section
// 4.3's range rule. Limited to the single-byte-alphabet case this
// generator's grammar produces (no Unicode class splitting).
func (b *Builder) compileByteRange(lo, hi byte) (start, end StateID, err error) {
	start, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	end, err = b.newState()
	if err != nil {
		return NoState, NoState, err
	}
	c := lo
	for {
		b.SetByte(start, c, end)
		if c == hi {
			break
		}
		c++
	}
	return start, end, nil
}
