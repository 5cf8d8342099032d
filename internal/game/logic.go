package game

// AliveTeams returns the number of teams that still have a living player.
func AliveTeams(teams []*Team) int {
	n := 0
	for _, t := range teams {
		if t.IsAlive() {
			n++
		}
	}
	return n
}

// Winner returns the index of the only team left standing, or -1 while more
// than one team (or none) is alive.
func Winner(teams []*Team) int {
	winner := -1
	for _, t := range teams {
		if !t.IsAlive() {
			continue
		}
		if winner >= 0 {
			return -1
		}
		winner = t.Index
	}
	return winner
}

// CurrentTeam returns the team whose turn it is, or nil before Init.
func (g *Game) CurrentTeam() *Team {
	if g.Arena == nil || len(g.Arena.Teams) == 0 {
		return nil
	}
	return g.Arena.Teams[g.currentTeam]
}

// NextTeam moves the turn to the next team with a living player, skipping
// eliminated teams. It returns false, leaving the turn unchanged, when no
// other team is alive; the game is then over.
func (g *Game) NextTeam() (*Team, bool) {
	if g.Arena == nil || len(g.Arena.Teams) == 0 {
		return nil, false
	}

	n := len(g.Arena.Teams)
	for step := 1; step < n; step++ {
		idx := (g.currentTeam + step) % n
		if g.Arena.Teams[idx].IsAlive() {
			g.currentTeam = idx
			g.checkOver()
			return g.Arena.Teams[idx], true
		}
	}
	g.checkOver()
	return nil, false
}

// KillPlayer marks the player with the given ID dead. It returns false if
// no such player exists.
func (g *Game) KillPlayer(id string) bool {
	if g.Arena == nil {
		return false
	}
	for _, p := range g.Arena.Players() {
		if p.ID == id {
			p.Kill()
			g.checkOver()
			return true
		}
	}
	return false
}

func (g *Game) checkOver() {
	if g.State == StatePlaying && AliveTeams(g.Arena.Teams) <= 1 {
		g.State = StateOver
	}
}
