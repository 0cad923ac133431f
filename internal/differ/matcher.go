package differ

// Match computes the edit script between two token sequences using the
// Myers O(ND) algorithm (divide and conquer on the middle snake, per the
// 1986 paper "An O(ND) Difference Algorithm and Its Variations").
//
// The returned operations are ordered by increasing index, cover both
// sequences completely with no gaps, and collapse adjacent delete/insert
// gaps into replace operations. Matching common prefixes are consumed
// before bisecting, so of all minimal scripts the one retaining the
// earliest common run wins.
func Match(source, comparison []string) []EditOp {
	ctx := newMatchContext(source, comparison)
	ctx.compareRange(0, len(source), 0, len(comparison))
	return ctx.buildOps()
}

// matchContext holds interned sequences and per-token change marks
type matchContext struct {
	a, b       []int
	aChanged   []bool
	bChanged   []bool
	interner   map[string]int
	nextSymbol int
}

func newMatchContext(source, comparison []string) *matchContext {
	ctx := &matchContext{
		interner: make(map[string]int, len(source)+len(comparison)),
	}
	ctx.a = ctx.intern(source)
	ctx.b = ctx.intern(comparison)
	ctx.aChanged = make([]bool, len(source))
	ctx.bChanged = make([]bool, len(comparison))
	return ctx
}

// intern maps tokens to integer symbols so the inner loops compare ints
func (ctx *matchContext) intern(tokens []string) []int {
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		id, ok := ctx.interner[tok]
		if !ok {
			id = ctx.nextSymbol
			ctx.nextSymbol++
			ctx.interner[tok] = id
		}
		ids[i] = id
	}
	return ids
}

// compareRange diffs a[xoff:xlim] against b[yoff:ylim], marking changed
// tokens. Matching elements are trimmed from both ends before bisecting.
func (ctx *matchContext) compareRange(xoff, xlim, yoff, ylim int) {
	for xoff < xlim && yoff < ylim && ctx.a[xoff] == ctx.b[yoff] {
		xoff++
		yoff++
	}
	for xoff < xlim && yoff < ylim && ctx.a[xlim-1] == ctx.b[ylim-1] {
		xlim--
		ylim--
	}

	if xoff == xlim {
		ctx.markInserted(yoff, ylim)
		return
	}
	if yoff == ylim {
		ctx.markDeleted(xoff, xlim)
		return
	}

	ctx.bisect(xoff, xlim, yoff, ylim)
}

func (ctx *matchContext) markInserted(yoff, ylim int) {
	for j := yoff; j < ylim; j++ {
		ctx.bChanged[j] = true
	}
}

func (ctx *matchContext) markDeleted(xoff, xlim int) {
	for i := xoff; i < xlim; i++ {
		ctx.aChanged[i] = true
	}
}

// bisect finds the middle snake of the current subproblem by walking
// forward and reverse D-paths until they overlap, then recurses on both
// halves. Worst case cost is O((N+M)·D) time with O(N+M) space per level.
func (ctx *matchContext) bisect(xoff, xlim, yoff, ylim int) {
	lenA := xlim - xoff
	lenB := ylim - yoff
	maxD := (lenA + lenB + 1) / 2
	vOff := maxD
	vLen := 2*maxD + 1

	v1 := make([]int, vLen)
	v2 := make([]int, vLen)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOff+1] = 0
	v2[vOff+1] = 0

	delta := lenA - lenB
	// With an odd delta the forward path is the one that will collide
	front := delta%2 != 0

	k1start, k1end := 0, 0
	k2start, k2end := 0, 0

	for d := 0; d < maxD; d++ {
		// Walk the forward path one step
		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1off := vOff + k1
			var x1 int
			if k1 == -d || (k1 != d && v1[k1off-1] < v1[k1off+1]) {
				x1 = v1[k1off+1]
			} else {
				x1 = v1[k1off-1] + 1
			}
			y1 := x1 - k1
			for x1 < lenA && y1 < lenB && ctx.a[xoff+x1] == ctx.b[yoff+y1] {
				x1++
				y1++
			}
			v1[k1off] = x1

			switch {
			case x1 > lenA:
				k1end += 2
			case y1 > lenB:
				k1start += 2
			case front:
				k2off := vOff + delta - k1
				if k2off >= 0 && k2off < vLen && v2[k2off] != -1 {
					// Mirror the reverse x onto the forward coordinate system
					x2 := lenA - v2[k2off]
					if x1 >= x2 {
						ctx.splitAt(xoff, xlim, yoff, ylim, xoff+x1, yoff+y1)
						return
					}
				}
			}
		}

		// Walk the reverse path one step
		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2off := vOff + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2off-1] < v2[k2off+1]) {
				x2 = v2[k2off+1]
			} else {
				x2 = v2[k2off-1] + 1
			}
			y2 := x2 - k2
			for x2 < lenA && y2 < lenB && ctx.a[xlim-x2-1] == ctx.b[ylim-y2-1] {
				x2++
				y2++
			}
			v2[k2off] = x2

			switch {
			case x2 > lenA:
				k2end += 2
			case y2 > lenB:
				k2start += 2
			case !front:
				k1off := vOff + delta - k2
				if k1off >= 0 && k1off < vLen && v1[k1off] != -1 {
					x1 := v1[k1off]
					y1 := x1 - (delta - k2)
					x2abs := lenA - x2
					if x1 >= x2abs {
						ctx.splitAt(xoff, xlim, yoff, ylim, xoff+x1, yoff+y1)
						return
					}
				}
			}
		}
	}

	// No commonality at all within this range: the whole of both sides
	// changed. This is also the pathological worst case the size guard
	// exists for.
	ctx.markDeleted(xoff, xlim)
	ctx.markInserted(yoff, ylim)
}

// splitAt recurses on both halves around the detected overlap point
func (ctx *matchContext) splitAt(xoff, xlim, yoff, ylim, x, y int) {
	ctx.compareRange(xoff, x, yoff, y)
	ctx.compareRange(x, xlim, y, ylim)
}

// buildOps converts the change marks into an ordered edit script. It walks
// both sequences in lockstep, grouping equal runs and collapsing adjacent
// deleted/inserted runs into replace operations.
func (ctx *matchContext) buildOps() []EditOp {
	var ops []EditOp
	n := len(ctx.a)
	m := len(ctx.b)
	i, j := 0, 0

	for i < n || j < m {
		eqI, eqJ := i, j
		for i < n && j < m && !ctx.aChanged[i] && !ctx.bChanged[j] {
			i++
			j++
		}
		if i > eqI {
			ops = append(ops, EditOp{Tag: OpEqual, I1: eqI, I2: i, J1: eqJ, J2: j})
		}

		delStart := i
		for i < n && ctx.aChanged[i] {
			i++
		}
		insStart := j
		for j < m && ctx.bChanged[j] {
			j++
		}

		switch {
		case i > delStart && j > insStart:
			ops = append(ops, EditOp{Tag: OpReplace, I1: delStart, I2: i, J1: insStart, J2: j})
		case i > delStart:
			ops = append(ops, EditOp{Tag: OpDelete, I1: delStart, I2: i, J1: j, J2: j})
		case j > insStart:
			ops = append(ops, EditOp{Tag: OpInsert, I1: i, I2: i, J1: insStart, J2: j})
		}
	}

	return ops
}
