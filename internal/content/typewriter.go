package content

import "time"

// Default pacing of the hero banner
const (
	DefaultTypingSpeed   = 100 * time.Millisecond
	DefaultDeletingSpeed = 50 * time.Millisecond
	DefaultDelayBetween  = 2 * time.Second
)

// Frame is the visible state of the typed-text banner
type Frame struct {
	Text     string `json:"text"`
	Index    int    `json:"index"`
	Deleting bool   `json:"deleting"`
}

// Typewriter types each phrase one rune at a time, pauses, deletes it and
// moves on to the next phrase, wrapping around at the end.
type Typewriter struct {
	Texts         []string
	TypingSpeed   time.Duration
	DeletingSpeed time.Duration
	DelayBetween  time.Duration
}

// NewTypewriter creates a typewriter with the default pacing
func NewTypewriter(texts []string) *Typewriter {
	return &Typewriter{
		Texts:         texts,
		TypingSpeed:   DefaultTypingSpeed,
		DeletingSpeed: DefaultDeletingSpeed,
		DelayBetween:  DefaultDelayBetween,
	}
}

// Next returns the frame that follows f and how long to wait before showing it.
// A typewriter without texts stays on the empty frame. Out of range indexes
// wrap around the texts.
func (t *Typewriter) Next(f Frame) (Frame, time.Duration) {
	if len(t.Texts) == 0 {
		return Frame{}, t.DelayBetween
	}

	n := len(t.Texts)
	index := ((f.Index % n) + n) % n
	current := []rune(t.Texts[index])
	shown := []rune(f.Text)

	if f.Deleting {
		if len(shown) == 0 {
			next := (index + 1) % n
			return Frame{Text: firstRune(t.Texts[next]), Index: next}, t.DelayBetween
		}
		return Frame{Text: string(shown[:len(shown)-1]), Index: index, Deleting: true}, t.DeletingSpeed
	}

	if len(shown) >= len(current) {
		return Frame{Text: f.Text, Index: index, Deleting: true}, t.DelayBetween
	}
	return Frame{Text: string(current[:len(shown)+1]), Index: index}, t.TypingSpeed
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
