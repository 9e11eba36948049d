package chatbot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func replyFor(t *testing.T, keywords ...string) string {
	t.Helper()
	for _, rule := range DefaultRules() {
		for _, kw := range rule.Keywords {
			for _, want := range keywords {
				if kw == want {
					return rule.Reply
				}
			}
		}
	}
	t.Fatalf("no rule carries keywords %v", keywords)
	return ""
}

func TestRespondTopics(t *testing.T) {
	r := NewResponder()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"recycling centers", "where is the nearest recycling center?", replyFor(t, "recycle")},
		{"pickup schedule", "when is the next pickup in my area", replyFor(t, "pickup")},
		{"waste tracking", "how do I log my trash", replyFor(t, "waste")},
		{"statistics", "show me my progress", replyFor(t, "stat")},
		{"segregation tips", "how should I separate my rubbish", replyFor(t, "separate")},
		{"material guidance", "what do I do with old glass jars", replyFor(t, "glass")},
		{"goals", "I want to set a target", replyFor(t, "goal")},
		{"greeting", "hello there", replyFor(t, "hello")},
		{"help menu", "what can you do", replyFor(t, "help")},
		{"thanks", "thank you so much", replyFor(t, "thank")},
		{"environment", "what about my carbon footprint", replyFor(t, "carbon")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Respond(tt.input))
		})
	}
}

// Priority order is load-bearing: an input matching two rule sets must get
// the earlier rule's reply.
func TestRespondFirstMatchWins(t *testing.T) {
	r := NewResponder()

	// "recycle" (rule 1) and "plastic" (material rule) both match.
	got := r.Respond("where can I recycle plastic bottles")
	assert.Equal(t, replyFor(t, "recycle"), got)
	assert.NotEqual(t, replyFor(t, "plastic"), got)

	// "schedule" outranks "thank".
	assert.Equal(t, replyFor(t, "schedule"), r.Respond("thanks, and what is the schedule?"))
}

func TestRespondFallback(t *testing.T) {
	r := NewResponder()

	assert.Equal(t, r.Fallback(), r.Respond(""))
	assert.Equal(t, r.Fallback(), r.Respond("   "))
	assert.Equal(t, r.Fallback(), r.Respond("tell me a joke"))
}

func TestRespondCaseInsensitive(t *testing.T) {
	r := NewResponder()

	assert.Equal(t, r.Respond("recycle"), r.Respond("RECYCLE"))
	assert.Equal(t, r.Respond("hello"), r.Respond("HeLLo"))
}

func TestRespondUnicodeInput(t *testing.T) {
	r := NewResponder()

	// Unicode text is accepted as-is; a keyword embedded in it still matches.
	got := r.Respond("नमस्ते, recycling कहाँ गर्ने?")
	assert.Equal(t, replyFor(t, "recycling"), got)
}

func TestRespondIsDeterministic(t *testing.T) {
	r := NewResponder()
	first := r.Respond("help")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Respond("help"))
	}
}

func TestFallbackMentionsFeatures(t *testing.T) {
	r := NewResponder()
	fb := strings.ToLower(r.Fallback())
	assert.Contains(t, fb, "recycling centers")
	assert.Contains(t, fb, "pickup schedules")
	assert.Contains(t, fb, "tips")
}
