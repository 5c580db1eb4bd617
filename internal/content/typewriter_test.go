package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypewriterTypesThenDeletes(t *testing.T) {
	tw := NewTypewriter([]string{"ab", "xy"})

	expected := []struct {
		frame Frame
		delay time.Duration
	}{
		{Frame{Text: "a", Index: 0}, DefaultTypingSpeed},
		{Frame{Text: "ab", Index: 0}, DefaultTypingSpeed},
		{Frame{Text: "ab", Index: 0, Deleting: true}, DefaultDelayBetween},
		{Frame{Text: "a", Index: 0, Deleting: true}, DefaultDeletingSpeed},
		{Frame{Text: "", Index: 0, Deleting: true}, DefaultDeletingSpeed},
		{Frame{Text: "x", Index: 1}, DefaultDelayBetween},
		{Frame{Text: "xy", Index: 1}, DefaultTypingSpeed},
		{Frame{Text: "xy", Index: 1, Deleting: true}, DefaultDelayBetween},
		{Frame{Text: "x", Index: 1, Deleting: true}, DefaultDeletingSpeed},
		{Frame{Text: "", Index: 1, Deleting: true}, DefaultDeletingSpeed},
		{Frame{Text: "a", Index: 0}, DefaultDelayBetween},
	}

	frame := Frame{}
	for i, step := range expected {
		next, delay := tw.Next(frame)
		assert.Equal(t, step.frame, next, "step %d", i)
		assert.Equal(t, step.delay, delay, "step %d", i)
		frame = next
	}
}

func TestTypewriterMultibyteRunes(t *testing.T) {
	tw := NewTypewriter([]string{"héllo"})

	frame := Frame{}
	for i := 0; i < 3; i++ {
		frame, _ = tw.Next(frame)
	}
	assert.Equal(t, "hél", frame.Text)
}

func TestTypewriterWithoutTexts(t *testing.T) {
	tw := NewTypewriter(nil)

	frame, delay := tw.Next(Frame{Text: "stale"})
	assert.Equal(t, Frame{}, frame)
	assert.Equal(t, DefaultDelayBetween, delay)
}

func TestTypewriterSinglePhraseWraps(t *testing.T) {
	tw := NewTypewriter([]string{"a"})

	frame, _ := tw.Next(Frame{Text: "", Index: 0, Deleting: true})
	assert.Equal(t, Frame{Text: "a", Index: 0}, frame)
}

func TestTypewriterWrapsOutOfRangeIndex(t *testing.T) {
	tw := NewTypewriter([]string{"ab", "xy"})

	testCases := []struct {
		name     string
		frame    Frame
		expected Frame
	}{
		{name: "negative index", frame: Frame{Index: -1}, expected: Frame{Text: "x", Index: 1}},
		{name: "large negative index", frame: Frame{Index: -4}, expected: Frame{Text: "a", Index: 0}},
		{name: "index past the end", frame: Frame{Index: 3}, expected: Frame{Text: "x", Index: 1}},
		{name: "negative index while deleting", frame: Frame{Index: -1, Deleting: true}, expected: Frame{Text: "a", Index: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				frame, _ := tw.Next(tc.frame)
				assert.Equal(t, tc.expected, frame)
			})
		})
	}
}
