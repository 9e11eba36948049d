// Package chatbot implements the rule-based assistant behind the EcoTrack
// chat widget. Matching is plain substring containment over a lowercased
// copy of the input: both the incoming text and the rule keywords are folded
// with strings.ToLower, which is locale-independent and mirrors how users
// actually type keyword queries. Rules are evaluated in slice order and the
// first match wins, so the order below is part of the contract.
package chatbot

import "strings"

// Rule pairs a keyword set with a canned reply. The rule matches when the
// normalized input contains ANY of the keywords.
type Rule struct {
	Keywords []string
	Reply    string
}

const fallbackReply = "I'm here to help with waste management! You can ask me about recycling centers, pickup schedules, waste tracking, statistics, goals, or tips for proper waste disposal. What would you like to know?"

// DefaultRules returns the ordered rule list. Earlier rules take precedence:
// "where can I recycle plastic bottles" hits the recycling rule, not the
// material rule, because the recycling rule is listed first.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"recycle", "recycling", "center"},
			Reply:    "I can help you find recycling centers! Check the 'Recycling Centers' page or tell me your location.",
		},
		{
			Keywords: []string{"pickup", "schedule", "collection"},
			Reply:    "You can view pickup schedules on the 'Pickup Schedules' page. What area are you in? I can also remind you about upcoming pickups!",
		},
		{
			Keywords: []string{"waste", "dispose", "trash", "garbage"},
			Reply:    "You can track your waste disposal on the 'Track Waste' page. What type of waste do you need to dispose of?",
		},
		{
			Keywords: []string{"stat", "statistic", "progress", "how much"},
			Reply:    "Check your dashboard for detailed statistics and progress!",
		},
		{
			Keywords: []string{"tip", "segregat", "sort", "separate"},
			Reply:    "Check out the 'Waste Tips' page for helpful information on waste segregation and disposal! I can also give you specific tips - just ask!",
		},
		{
			Keywords: []string{"plastic", "paper", "glass", "organic", "e-waste"},
			Reply:    "Clean and dry recyclables before disposal, keep organic waste separate for composting, and take electronics to a certified e-waste center. The 'Waste Tips' page has guidance per material.",
		},
		{
			Keywords: []string{"goal", "target", "challenge"},
			Reply:    "You can set waste reduction goals on your dashboard! Try setting a goal to reduce waste or increase recycling. Would you like help setting one up?",
		},
		{
			Keywords: []string{"hello", "hi", "hey", "greeting"},
			Reply:    "Hello! I'm the EcoTrack assistant. How can I help you with waste management today? I can help with tracking, finding centers, schedules, and tips!",
		},
		{
			Keywords: []string{"help", "support", "what can you"},
			Reply:    "I can help you with: finding recycling centers, checking pickup schedules, tracking waste, setting goals, viewing statistics, and providing waste management tips. What do you need?",
		},
		{
			Keywords: []string{"thank"},
			Reply:    "You're welcome! Keep up the great work with waste management!",
		},
		{
			Keywords: []string{"environment", "impact", "carbon"},
			Reply:    "Great question! Proper waste management significantly reduces environmental impact. Recycling helps reduce carbon emissions and saves resources. Track your waste to see your positive impact!",
		},
	}
}

// Responder maps free text to a canned reply. It is pure and safe for
// concurrent use: no state is written between calls.
type Responder struct {
	rules    []Rule
	fallback string
}

func NewResponder() *Responder {
	return NewResponderWithRules(DefaultRules())
}

func NewResponderWithRules(rules []Rule) *Responder {
	// Fold keywords once so Respond only folds the input.
	folded := make([]Rule, len(rules))
	for i, r := range rules {
		keywords := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			keywords[j] = strings.ToLower(kw)
		}
		folded[i] = Rule{Keywords: keywords, Reply: r.Reply}
	}
	return &Responder{rules: folded, fallback: fallbackReply}
}

// Respond returns the reply of the first matching rule, or the fallback when
// nothing matches (including empty or whitespace-only input).
func (r *Responder) Respond(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return r.fallback
	}

	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				return rule.Reply
			}
		}
	}

	return r.fallback
}

// Fallback exposes the fallback reply for handlers that need to echo it.
func (r *Responder) Fallback() string {
	return r.fallback
}
