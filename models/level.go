package models

import "math"

// Level is one band of the static xp ladder. A zero MaxXP marks the
// open-ended top band and is left out of the JSON.
type Level struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	MinXP int    `json:"minXp"`
	MaxXP int    `json:"maxXp,omitempty"`
}

// Contains reports whether xp falls inside the band.
func (l Level) Contains(xp int) bool {
	return xp >= l.MinXP && (l.MaxXP == 0 || xp <= l.MaxXP)
}

// Levels is ordered by MinXP. The last band is open-ended.
var Levels = []Level{
	{Level: 1, Title: "Beginner", MinXP: 0, MaxXP: 50},
	{Level: 2, Title: "Learner", MinXP: 51, MaxXP: 150},
	{Level: 3, Title: "Maxim Explorer", MinXP: 151, MaxXP: 300},
	{Level: 4, Title: "Legal Latin Pro", MinXP: 301, MaxXP: 500},
	{Level: 5, Title: "Juris Master", MinXP: 501},
}

// XpProgress describes how far a user is through the current band
type XpProgress struct {
	Current    int     `json:"current"`
	Required   int     `json:"required"`
	NextLevel  int     `json:"nextLevel"`
	Percentage float64 `json:"percentage"`
}

// LevelFor returns the highest band whose MinXP is at most xp.
func LevelFor(xp int) Level {
	for i := len(Levels) - 1; i >= 0; i-- {
		if xp >= Levels[i].MinXP {
			return Levels[i]
		}
	}
	return Levels[0]
}

// XpForNextLevel reports progress towards the next band. At the top band
// Required is 0 and NextLevel stays on the current level.
func XpForNextLevel(xp int) XpProgress {
	current := LevelFor(xp)
	idx := current.Level - 1

	if idx >= len(Levels)-1 {
		return XpProgress{
			Current:    xp - current.MinXP,
			Required:   0,
			NextLevel:  current.Level,
			Percentage: 100,
		}
	}

	next := Levels[idx+1]
	p := XpProgress{
		Current:   xp - current.MinXP,
		Required:  next.MinXP - current.MinXP,
		NextLevel: next.Level,
	}
	if p.Required > 0 {
		p.Percentage = math.Min(float64(p.Current)/float64(p.Required)*100, 100)
	} else {
		p.Percentage = 100
	}
	return p
}
