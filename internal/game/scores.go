package game

// BestScores holds the best completed score per difficulty for the running
// session. Values start at 0 and never decrease.
type BestScores [NumDifficulties]int

// Get returns the best score for d.
func (b BestScores) Get(d Difficulty) int {
	return b[d]
}

// RecordIfBest returns the scores with d updated to score if it is strictly
// greater than the stored value, and whether an update happened.
func (b BestScores) RecordIfBest(d Difficulty, score int) (BestScores, bool) {
	if score <= b[d] {
		return b, false
	}
	b[d] = score
	return b, true
}
