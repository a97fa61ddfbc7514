package ai

import (
	"context"
	"strings"

	"github.com/snipx/snipx-backend/internal/domain"
)

// rule pairs a keyword set with its canned reply. Rules are evaluated
// top-to-bottom and the first match wins, so the ordering below is
// load-bearing: "help me upload a video" must hit the upload rule, not the
// greeting rule.
type rule struct {
	keywords []string
	reply    string
}

var fallbackRules = []rule{
	{
		keywords: []string{"upload", "video", "file"},
		reply:    "To upload a video, go to the Editor page and drag & drop your file or click 'Select Video'. We support MP4, MOV, AVI, and MKV formats up to 500MB.",
	},
	{
		keywords: []string{"subtitle", "caption", "text"},
		reply:    "Our AI can generate subtitles in multiple languages including English, Urdu, Spanish, French, and German. You can also edit them after generation in the editor.",
	},
	{
		keywords: []string{"process", "time", "how long"},
		reply:    "Processing time typically takes 1-3 minutes per minute of video content, depending on the features you select like subtitle generation, audio enhancement, etc.",
	},
	{
		keywords: []string{"audio", "sound", "voice", "enhance"},
		reply:    "SnipX can enhance your audio by removing background noise, normalizing volume levels, and cutting silent parts automatically.",
	},
	{
		keywords: []string{"price", "cost", "plan", "payment"},
		reply:    "SnipX offers flexible pricing plans. You can start with our free tier and upgrade as needed. Check our pricing page for detailed information.",
	},
	{
		keywords: []string{"feature", "what can", "capabilities"},
		reply:    "SnipX offers video cutting, subtitle generation, audio enhancement, thumbnail creation, and video summarization. All powered by AI for the best results.",
	},
	{
		keywords: []string{"account", "login", "signup", "register"},
		reply:    "You can create an account by clicking 'Get Started' or use our demo mode to try features without registration.",
	},
	{
		keywords: []string{"hello", "hi", "hey", "help"},
		reply:    "Hello! I'm your SnipX assistant. I can help you with video uploads, editing features, subtitle generation, and more. What would you like to know?",
	},
}

const defaultReply = "I'm here to help with SnipX! You can ask me about video uploads, subtitle generation, audio enhancement, processing times, or any other features. What would you like to know?"

// FallbackResponder answers from a fixed keyword rule table. It needs no
// credentials and never fails, which makes it the terminal element of the
// responder chain.
type FallbackResponder struct{}

// NewFallbackResponder creates the rule-based responder
func NewFallbackResponder() *FallbackResponder {
	return &FallbackResponder{}
}

func (r *FallbackResponder) Name() string {
	return "fallback"
}

func (r *FallbackResponder) IsConfigured() bool {
	return true
}

// Reply classifies the lower-cased message against the rule table. History
// is ignored; the rules only look at the current message.
func (r *FallbackResponder) Reply(_ context.Context, message string, _ []domain.ConversationTurn) (string, error) {
	lower := strings.ToLower(message)

	for _, rl := range fallbackRules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return rl.reply, nil
			}
		}
	}
	return defaultReply, nil
}
