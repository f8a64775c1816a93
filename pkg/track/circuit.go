package track

// Asset ids used by the fixed circuit. The sprite library maps them to
// imagery and declared world widths.
const (
	AssetTree      = "tree"
	AssetPalm      = "palm"
	AssetBoulder   = "boulder"
	AssetBillboard = "billboard"
	AssetSign      = "sign"
)

// BuildCircuit assembles the complete fixed circuit: the piecewise road,
// periodic roadside decorations, and the start band. Runs once at startup.
func BuildCircuit(widthOf SpriteWidths) *Track {
	b := NewBuilder(widthOf)

	b.AddStraight(LengthShort)
	b.AddLowRollingHills()
	b.AddSCurves()
	b.AddCurve(LengthMedium, CurveMedium, HillLow)
	b.AddBumps()
	b.AddLowRollingHills()
	b.AddCurve(LengthLong*2, CurveMedium, HillMedium)
	b.AddStraight(LengthMedium)
	b.AddHill(LengthMedium, HillHigh)
	b.AddSCurves()
	b.AddCurve(LengthLong, -CurveMedium, 0)
	b.AddHill(LengthLong, HillHigh)
	b.AddCurve(LengthLong, CurveMedium, -HillLow)
	b.AddBumps()
	b.AddHill(LengthLong, -HillMedium)
	b.AddStraight(LengthMedium)
	b.AddSCurves()
	b.AddDownhillToEnd(200)

	decorate(b)
	return b.Build()
}

// decorate scatters periodic background decorations and places a few fixed
// landmarks. Intervals are fixed so the circuit is deterministic.
func decorate(b *Builder) {
	n := len(b.segments)

	// Billboards flank the start.
	b.AddSideObject(10, AssetBillboard, -1, 0.5)
	b.AddSideObject(25, AssetBillboard, 1, 0.5)
	b.AddSideObject(40, AssetBillboard, -1, 0.5)

	// Trees every few segments, alternating sides with a slow drift in
	// margin so the treeline is not a wall.
	for i := 60; i < n; i += 5 {
		side := 1.0
		if (i/5)%2 == 0 {
			side = -1
		}
		asset := AssetTree
		if (i/5)%3 == 0 {
			asset = AssetPalm
		}
		margin := float64(i%4) * 0.6
		b.AddSideObject(i, asset, side, margin)
	}

	// Boulders pinch the road on the long sweepers.
	for i := 200; i < n; i += 67 {
		side := 1.0
		if b.segments[i].Curve < 0 {
			side = -1
		}
		b.AddSideObject(i, AssetBoulder, side, 0)
	}

	// A few boulders intrude onto the tarmac in the back half; all leave
	// the inside line open.
	b.AddObstacle(n*2/3, AssetBoulder, 0.85)
	b.AddObstacle(n*3/4, AssetBoulder, -0.8)
	b.AddObstacle(n*5/6, AssetBoulder, 0.8)

	// Warning signs ahead of the sharper transitions.
	for i := 1; i < n-1; i++ {
		if b.segments[i].Curve == 0 && b.segments[i+1].Curve != 0 {
			side := -1.0
			if b.segments[i+1].Curve < 0 {
				side = 1
			}
			b.AddSideObject(i, AssetSign, side, 0.2)
		}
	}
}
