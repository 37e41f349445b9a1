package model

type GameID string

const (
	GameRiddle        GameID = "riddle"
	GameMath          GameID = "math"
	GameGuessAnimal   GameID = "rabbit"
	GameNumberGuess   GameID = "num"
	GameRockPaperScissors GameID = "rps"
)

// GameDefinition is an immutable mini-game template. Answer is the normalized
// winning answer; it is empty for adversarial games (rock-paper-scissors) whose
// outcome is computed against a live random choice, and it is re-rolled per
// session for the number-guess game.
type GameDefinition struct {
	ID     GameID
	Name   string
	Prompt string
	Answer string
}

// GameDefinitions is the fixed registry of mini-games.
var GameDefinitions = []GameDefinition{
	{ID: GameRiddle, Name: "Riddle", Prompt: "I speak without a mouth and hear without ears. What am I?", Answer: "echo"},
	{ID: GameMath, Name: "Math", Prompt: "What is 15 + 27?", Answer: "42"},
	{ID: GameGuessAnimal, Name: "Guess Animal", Prompt: "I am small, fluffy, and hop around. What am I?", Answer: "rabbit"},
	{ID: GameNumberGuess, Name: "Number Guess", Prompt: "Guess a number between 1 and 10 🎲"},
	{ID: GameRockPaperScissors, Name: "Rock Paper Scissors", Prompt: "Type 'rock', 'paper' or 'scissors' ✊✋✌️"},
}

// GameInstance is one live game inside a session. Answer is the session's
// answer, which for the number-guess game differs from the template.
type GameInstance struct {
	Def    GameDefinition
	Answer string
}

// RPSChoices are the only inputs the rock-paper-scissors game accepts,
// and the pool the bot draws its own choice from.
var RPSChoices = []string{"rock", "paper", "scissors"}

// RPSBeats reports whether choice a beats choice b under the standard relation.
func RPSBeats(a, b string) bool {
	switch a {
	case "rock":
		return b == "scissors"
	case "paper":
		return b == "rock"
	case "scissors":
		return b == "paper"
	}
	return false
}
