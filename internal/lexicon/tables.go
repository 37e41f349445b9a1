// File: internal/lexicon/tables.go
package lexicon

import "happybot/internal/domain/model"

// keywords maps each category to its trigger substrings, in match priority
// order. All entries are already normalized. CategoryUnknown and
// CategoryFallback deliberately have no keywords: they are default paths.
var keywords = map[model.Category][]string{
	model.CategoryGreetings: {"hi", "hello", "hey", "yo", "sup", "hoi", "hallo"},
	model.CategorySadness:   {"sad", "unhappy", "depressed", "down", "lonely", "cry", "miserable", "hurt"},
	model.CategoryHappiness: {"happy", "excited", "joy", "glad", "love", "smile", "good", "cheerful"},
	model.CategoryAnger:     {"angry", "mad", "furious", "upset", "hate", "boos", "irritated"},
	model.CategoryBoredom:   {"bored", "meh", "nothing", "dull", "tired", "verveeld", "saai"},
	model.CategoryStress:    {"stressed", "anxious", "worried", "panic", "druk", "overwhelmed"},
	model.CategoryCalm:      {"calm", "relaxed", "peaceful", "ok", "fine", "chill", "rustig"},
	model.CategoryConfusion: {"confused", "huh", "what", "idk", "unsure"},
	model.CategoryThreats:   {"kill", "die", "stupid", "hate you", "idiot", "fok", "fuck"},
	model.CategoryYesNo:     {"yes", "yeah", "yep", "sure", "ok", "no", "nope", "nah", "ja", "nee"},
	model.CategoryJokes:     {"joke", "funny", "lol", "mop", "grap"},
}

// responses maps every category, including the two catch-alls, to its
// candidate replies. Non-empty for every selectable category.
var responses = map[model.Category][]string{
	model.CategoryGreetings: {
		"Hello! 😄 How are you today?",
		"Hey! 👋 Good to see you!",
		"Hi there! 😎 Ready to chat?",
		"Yo! 🌸 What's up?",
		"Greetings! 😁 How's your mood?",
	},
	model.CategorySadness: {
		"I hear you 💛 It's okay to feel sad.",
		"Take your time — I'm listening.",
		"Want to talk about it? I'm here for you.",
		"Even tough days end 💛 You're not alone.",
	},
	model.CategoryHappiness: {
		"Yay! 😄 That's great!",
		"Amazing! 😎 Tell me more!",
		"Love to hear that 😁",
		"Fantastic! Want to celebrate with a joke?",
	},
	model.CategoryAnger: {
		"I understand 💛 Let's take a deep breath together.",
		"Anger is natural. Want to vent or try a fun distraction?",
		"Whoa 😅 Let's stay calm together.",
	},
	model.CategoryBoredom: {
		"Feeling bored? 😅 We can play a mini-game!",
		"How about a riddle or number guessing?",
		"I have some fun challenges — pick one!",
	},
	model.CategoryStress: {
		"Take a deep breath with me: in... out... 💨",
		"Small steps — one thing at a time!",
		"Want a quick relaxation exercise or fun distraction?",
	},
	model.CategoryCalm: {
		"Nice! Calm moments are precious 🌸",
		"Feeling relaxed 😄 Want a fun fact?",
		"Peaceful vibes — shall we chat about something light?",
	},
	model.CategoryConfusion: {
		"Hmm 😅 Can you explain that differently?",
		"Not sure I understand — help me out?",
		"I'm a bit confused by that 🤔",
	},
	model.CategoryThreats: {
		"Let's stay safe — I'm here to help.",
		"Whoa — I care about you, let's stay friendly.",
		"If you're upset, I can listen — but no harm talk.",
	},
	model.CategoryYesNo: {
		"Yes! 😄 Great!",
		"No worries, that's fine 👍",
		"Sure thing! 💛",
		"Okay — we can pause if needed",
	},
	model.CategoryJokes: {
		"Why did the computer get cold? It left its Windows open! 😄",
		"What do you call fake spaghetti? An impasta! 🍝",
		"I told a joke to a robot once — it short-circuited 🤖😂",
	},
	model.CategoryUnknown: {
		"Sorry, I don't understand 😅 Can you try another phrase?",
		"Haha 😄 That's new — tell me more!",
		"Hmm interesting 🤔 Can you explain?",
	},
	model.CategoryFallback: {
		"Bloop bloop 🤖 I need more info!",
		"HappyBot is dancing 🕺 Tell me more!",
		"🤖 Beep bop — that's puzzling!",
	},
}

// Every category must be answerable. Go cannot prove map coverage at compile
// time, so the table is checked once at startup.
func init() {
	for _, cat := range model.AllCategories {
		if len(responses[cat]) == 0 {
			panic("lexicon: no responses for category " + string(cat))
		}
	}
}

// idleRemarks are the unprompted messages the idle ticker may emit.
var idleRemarks = []string{
	"🌸 Fun fact: Honey never spoils!",
	"🎵 Hum your favorite song for 30 seconds!",
	"😂 Tiny joke: ask 'joke'!",
	"📚 Quote: 'Small steps every day!'",
}

// Responses returns the reply candidates for a category. The slice is shared;
// callers must not mutate it.
func Responses(cat model.Category) []string {
	return responses[cat]
}

// Keywords returns the trigger substrings for a category.
func Keywords(cat model.Category) []string {
	return keywords[cat]
}

// IdleRemarks returns the idle chatter pool.
func IdleRemarks() []string {
	return idleRemarks
}

// ThreatReply is the fixed de-escalation reply. It bypasses random selection
// so the safety response stays predictable.
func ThreatReply() string {
	return responses[model.CategoryThreats][0]
}
