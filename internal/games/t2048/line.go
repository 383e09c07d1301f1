package t2048

import "github.com/samber/lo"

// line is one row or column laid out so that tiles fall toward index 0.
type line [BoardSize]Tile

// lineStep records where a tile from the input line ended up.
type lineStep struct {
	from   int
	to     int
	merged bool // The tile took part in a merge
}

// reduceLine compacts the line toward index 0 and merges equal neighbours.
// Each tile merges at most once: a merged result is emitted and the scan skips
// past both of its sources. Returns the reduced line, the score from merges and
// the movement of every input tile.
func reduceLine(in line) (out line, score int, steps []lineStep) {
	dense := lo.Filter(lo.Range(BoardSize), func(i, _ int) bool {
		return !in[i].Empty()
	})

	write := 0
	for i := 0; i < len(dense); write++ {
		lead := in[dense[i]]

		if i+1 < len(dense) && in[dense[i+1]].Value == lead.Value {
			merged := Tile{ID: lead.ID, Value: lead.Value * 2}
			out[write] = merged
			score += merged.Value
			steps = append(steps,
				lineStep{from: dense[i], to: write, merged: true},
				lineStep{from: dense[i+1], to: write, merged: true},
			)
			i += 2
			continue
		}

		out[write] = lead
		steps = append(steps, lineStep{from: dense[i], to: write})
		i++
	}

	return out, score, steps
}
