package t2048

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// TileAnimation is one tile in flight, tracked by identity.
type TileAnimation struct {
	ID       uint64
	Value    int // Value shown while animating
	From     Pos
	To       Pos
	Progress float64 // 0.0 → 1.0
	Merged   bool    // Result of a merge (for visual effect)
	IsNew    bool    // New tile (for pop effect)
}

// animation plays a turn in two phases: tiles slide to their targets, then
// merged results and the spawned tile pop in. A zero duration skips a phase.
type animation struct {
	slideTicks int
	popTicks   int

	phase AnimationPhase
	ticks int
	tiles []TileAnimation
	pops  []TileAnimation // Played after the slide
}

func newAnimation(slideTicks, popTicks int) animation {
	return animation{
		slideTicks: max(slideTicks, 0),
		popTicks:   max(popTicks, 0),
	}
}

// start sets up the animation for an accepted turn. board is the engine board
// after the spawn.
func (a *animation) start(turn TurnResult, board Board) {
	a.tiles = a.tiles[:0]
	for _, m := range turn.Moves {
		a.tiles = append(a.tiles, TileAnimation{
			ID:     m.ID,
			Value:  m.Value,
			From:   m.From,
			To:     m.To,
			Merged: m.Merged,
		})
	}

	a.pops = nil
	seen := make(map[Pos]bool)
	for _, m := range turn.Moves {
		if !m.Merged || seen[m.To] {
			continue
		}
		seen[m.To] = true
		t := board.At(m.To)
		a.pops = append(a.pops, TileAnimation{ID: t.ID, Value: t.Value, From: m.To, To: m.To, Merged: true})
	}
	spawned := board.At(turn.Spawned)
	a.pops = append(a.pops, TileAnimation{
		ID:    spawned.ID,
		Value: spawned.Value,
		From:  turn.Spawned,
		To:    turn.Spawned,
		IsNew: true,
	})

	a.ticks = 0
	switch {
	case a.slideTicks > 0:
		a.phase = PhaseSlide
	case a.popTicks > 0:
		a.phase = PhasePop
		a.tiles = a.pops
	default:
		a.stop()
	}
}

// advance moves the animation forward one tick.
// Returns true if animation is still in progress.
func (a *animation) advance() bool {
	var duration int
	switch a.phase {
	case PhaseSlide:
		duration = a.slideTicks
	case PhasePop:
		duration = a.popTicks
	default:
		return false
	}

	a.ticks++
	progress := min(float64(a.ticks)/float64(duration), 1.0)
	for i := range a.tiles {
		a.tiles[i].Progress = progress
	}

	if a.ticks >= duration {
		a.finishPhase()
	}
	return a.active()
}

func (a *animation) finishPhase() {
	if a.phase == PhaseSlide && a.popTicks > 0 && len(a.pops) > 0 {
		a.phase = PhasePop
		a.ticks = 0
		a.tiles = a.pops
		a.pops = nil
		return
	}
	a.stop()
}

// stop drops any running animation; the board is drawn as is.
func (a *animation) stop() {
	a.phase = PhaseNone
	a.ticks = 0
	a.tiles = nil
	a.pops = nil
}

func (a *animation) active() bool {
	return a.phase != PhaseNone
}

// popping returns the pop animation of the tile with id, if one is playing.
func (a *animation) popping(id uint64) (TileAnimation, bool) {
	if a.phase != PhasePop {
		return TileAnimation{}, false
	}
	for _, t := range a.tiles {
		if t.ID == id {
			return t, true
		}
	}
	return TileAnimation{}, false
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition calculates the current cell position during animation.
func (t *TileAnimation) interpolatePosition() (col, row float64) {
	p := easeOutQuad(t.Progress)
	col = float64(t.From.Col) + float64(t.To.Col-t.From.Col)*p
	row = float64(t.From.Row) + float64(t.To.Row-t.From.Row)*p
	return col, row
}
