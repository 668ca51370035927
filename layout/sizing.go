package layout

import "github.com/chewxy/math32"

// Sizing is an ordered list of cell sizing policies.
type Sizing struct {
	sizes []Size
}

// Add appends one cell size.
func (s *Sizing) Add(size Size) {
	s.sizes = append(s.sizes, size)
}

// Len returns the number of allocated cells.
func (s *Sizing) Len() int {
	return len(s.sizes)
}

// ToLengths resolves the sizing policies against the available length
// (in points), with the given gap between consecutive cells. Remainder
// cells split what is left equally and are never negative.
func (s *Sizing) ToLengths(available, gap float32) []float32 {
	if len(s.sizes) == 0 {
		return nil
	}

	available -= gap * float32(len(s.sizes)-1)

	remainders := 0
	definite := float32(0)
	for _, size := range s.sizes {
		switch size.kind {
		case kindExact:
			definite += size.clamp(size.value)
		case kindRelative:
			definite += size.clamp(size.value * available)
		case kindRemainder:
			remainders++
		}
	}

	var remainderLength float32
	if remainders > 0 {
		share := math32.Max(0, (available-definite)/float32(remainders))
		remainderLength = share
	}

	lengths := make([]float32, len(s.sizes))
	for i, size := range s.sizes {
		switch size.kind {
		case kindExact:
			lengths[i] = size.clamp(size.value)
		case kindRelative:
			lengths[i] = size.clamp(size.value * available)
		case kindRemainder:
			lengths[i] = size.clamp(remainderLength)
		}
	}
	return lengths
}
