package contour

// side names one of the four edges of a unit cell.
type side uint8

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

// segment runs from the crossing on one cell edge to the crossing on another,
// with the above corners on its right.
type segment struct {
	from, to side
}

// corners holds the four samples of a unit cell.
type corners struct {
	tl, tr, br, bl float64
}

// index packs the above/below classification as tl<<3 | tr<<2 | br<<1 | bl.
func (c corners) index(t float64) int {
	idx := 0
	if c.tl >= t {
		idx |= 8
	}
	if c.tr >= t {
		idx |= 4
	}
	if c.br >= t {
		idx |= 2
	}
	if c.bl >= t {
		idx |= 1
	}
	return idx
}

func (c corners) mean() float64 {
	return (c.tl + c.tr + c.br + c.bl) / 4
}

// caseTable lists the segments of every case. Saddles (5, 10) hold the
// separated variant.
var caseTable = [16][]segment{
	0:  nil,
	1:  {{sideLeft, sideBottom}},
	2:  {{sideBottom, sideRight}},
	3:  {{sideLeft, sideRight}},
	4:  {{sideRight, sideTop}},
	5:  {{sideLeft, sideBottom}, {sideRight, sideTop}},
	6:  {{sideBottom, sideTop}},
	7:  {{sideLeft, sideTop}},
	8:  {{sideTop, sideLeft}},
	9:  {{sideTop, sideBottom}},
	10: {{sideTop, sideLeft}, {sideBottom, sideRight}},
	11: {{sideTop, sideRight}},
	12: {{sideRight, sideLeft}},
	13: {{sideRight, sideBottom}},
	14: {{sideBottom, sideLeft}},
	15: nil,
}

// joinedSaddles holds the saddle variants where the two above corners connect
// through the cell centre; each segment cuts off one below corner.
var joinedSaddles = [16][]segment{
	5:  {{sideLeft, sideTop}, {sideRight, sideBottom}},
	10: {{sideTop, sideRight}, {sideBottom, sideLeft}},
}

// cellSegments resolves the segments for one unit cell at threshold t.
func cellSegments(c corners, t float64) []segment {
	idx := c.index(t)
	if (idx == 5 || idx == 10) && c.mean() >= t {
		return joinedSaddles[idx]
	}
	return caseTable[idx]
}
