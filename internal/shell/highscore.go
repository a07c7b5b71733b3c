package shell

// HighScore is the best score of the running process. It starts at zero
// and is never persisted.
type HighScore struct {
	best int
}

// Record offers a finished session's score and reports whether it set a
// new high score. The stored value never decreases.
func (h *HighScore) Record(score int) bool {
	if score > h.best {
		h.best = score
		return true
	}
	return false
}

// Best returns the current high score.
func (h *HighScore) Best() int {
	return h.best
}
