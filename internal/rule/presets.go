package rule

import "strings"

// The named rules offered by the rule selection UI of the original game.
var presets []Rule

func init() {
	register := func(name, str, description string) {
		r, err := compile(str)
		if err != nil {
			panic("rule: bad preset " + name + ": " + str)
		}
		r.Name = name
		r.Description = description
		presets = append(presets, r)
	}

	register("Life", "B3/S23",
		"Conway's Game of Life. Chaotic growth from most starting patterns.")
	register("Replicator", "B1357/S1357",
		"Every pattern eventually produces copies of itself.")
	register("Seeds", "B2/S",
		"Every live cell dies each generation; most patterns explode.")
	register("Life Without Death", "B3/S012345678",
		"Cells never die. Patterns grow into sprawling still regions.")
	register("34 Life", "B34/S34",
		"Birth and survival on 3 or 4 neighbors. Rich in small oscillators.")
	register("Diamoeba", "B35678/S5678",
		"Forms large diamond-shaped blobs with chaotic boundaries.")
	register("2x2", "B36/S125",
		"Evolves 2x2 block patterns in step with themselves.")
	register("Highlife", "B36/S23",
		"Life plus birth on 6 neighbors. Home of the replicator.")
	register("Day & Night", "B3678/S34678",
		"Symmetric under swapping live and dead cells.")
	register("Morley", "B368/S245",
		"Slow-spaceship rule, also known as Move.")
	register("Anneal", "B4678/S35678",
		"Majority-vote smoothing; regions anneal into rounded shapes.")
}

// Presets lists the named rules in their display order.
func Presets() []Rule {
	out := make([]Rule, len(presets))
	copy(out, presets)
	return out
}

func presetByName(name string) (Rule, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Rule{}, false
}

func presetByString(canonical string) (Rule, bool) {
	for _, p := range presets {
		if p.str == canonical {
			return p, true
		}
	}
	return Rule{}, false
}
