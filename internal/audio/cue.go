// Package audio defines the symbolic sound cues emitted by the game
// core. Rendering a cue into actual sound is the view layer's problem;
// the core only names the moment.
package audio

// Cue identifies a sound effect.
type Cue string

const (
	CueNone    Cue = ""
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
	CueClick   Cue = "click"
	CueWin     Cue = "win"
	CueWater   Cue = "water"
)
