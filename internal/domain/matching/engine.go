package matching

import (
	"math"
	"sort"

	"careerverse/internal/domain/job"
)

// Result pairs a catalog posting with its computed relevance against a
// skill profile.
type Result struct {
	Posting    job.Posting
	MatchScore int
}

// Rank scores every posting of the catalog against the given skill set
// and returns the results sorted by score descending. The sort is
// stable, so postings with equal scores keep catalog order. Zero
// scores are included; callers may filter.
func Rank(skills []string, catalog []job.Posting) []Result {
	out := make([]Result, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, Result{
			Posting:    p,
			MatchScore: Score(skills, p.RequiredSkills),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

// Score computes 100 * |skills ∩ required| / max(1, |required|),
// rounded to the nearest integer. Skill names are opaque strings
// matched exactly; there is no taxonomy to normalize against, so
// anything fuzzier would promise more than the inputs can deliver.
func Score(skills []string, required []string) int {
	if len(required) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[s] = struct{}{}
	}

	seen := make(map[string]struct{}, len(required))
	inter := 0
	for _, r := range required {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if _, ok := have[r]; ok {
			inter++
		}
	}

	score := int(math.Round(100 * float64(inter) / float64(len(required))))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
