package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	flip "github.com/grindlemire/go-flip"
)

// grid is the demo's board: a wrapping row of cards, one tracked region per
// card, reordered through a keyed list.
type grid struct {
	root   *flip.Element
	board  *flip.Element
	list   *flip.For[int]
	all    []int
	hidden int // card held out of the board, or -1
	rng    *rand.Rand
}

func newGrid(app *flip.App, n int, seed uint64) *grid {
	g := &grid{
		root: flip.New(
			flip.WithDirection(flip.Column),
			flip.WithPadding(1),
			flip.WithGap(1),
		),
		board: flip.New(
			flip.WithWrap(),
			flip.WithGap(1),
			flip.WithFlexGrow(1),
		),
		hidden: -1,
		rng:    rand.New(rand.NewPCG(seed, seed>>32)),
	}
	for i := range n {
		g.all = append(g.all, i)
	}

	title := flip.New(
		flip.WithText("flipdemo  (Ctrl+C to quit)"),
		flip.WithTextColor(flip.RGBColor(220, 220, 220)),
	)
	g.root.AddChild(title, g.board)

	scope := flip.NewScope(app)
	g.list = flip.NewFor(scope, g.board, g.all, func(s *flip.Scope, id int, index *flip.State[int]) []*flip.Element {
		return s.Flip(fmt.Sprintf("card-%d", id), func(*flip.Scope) []*flip.Element {
			card := flip.New(
				flip.WithSize(12, 3),
				flip.WithPadding(1),
				flip.WithBackground(cardColor(id, n)),
				flip.WithTextColor(flip.RGBColor(20, 20, 20)),
				flip.WithText(cardLabel(id, index.Get())),
			)
			index.Bind(func(i int) {
				card.SetText(cardLabel(id, i))
			})
			return []*flip.Element{card}
		})
	}, flip.WithFallback(func(*flip.Scope) []*flip.Element {
		return []*flip.Element{flip.New(flip.WithText("no cards"))}
	}))
	return g
}

// step shuffles the board. Every few steps a card leaves the board or the
// held-out card comes back, so removal and reinsertion animate too.
func (g *grid) step() {
	order := make([]int, 0, len(g.all))
	switch {
	case g.hidden >= 0:
		g.hidden = -1
	case len(g.all) > 1 && g.rng.IntN(3) == 0:
		g.hidden = g.all[g.rng.IntN(len(g.all))]
	}
	for _, id := range g.all {
		if id != g.hidden {
			order = append(order, id)
		}
	}
	g.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	g.list.Set(order)
}

func cardLabel(id, index int) string {
	return fmt.Sprintf("#%-2d at %d", id, index)
}

// cardColor spreads n cards around the hue wheel.
func cardColor(id, n int) flip.Color {
	h := float64(id) / float64(n) * 6
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g = 1, x
	case 1:
		r, g = x, 1
	case 2:
		g, b = 1, x
	case 3:
		g, b = x, 1
	case 4:
		r, b = x, 1
	default:
		r, b = 1, x
	}
	scale := func(v float64) uint8 { return uint8(110 + v*130) }
	return flip.RGBColor(scale(r), scale(g), scale(b))
}
