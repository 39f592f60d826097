package rules

// Jokes is the fixed pool the joke rule draws from.
var Jokes = []string{
	"Why did the programmer quit his job? Because he didn't get arrays!",
	"Why do programmers prefer dark mode? Because light attracts bugs!",
	"What's a computer's favorite snack? Microchips!",
	"Why did the developer go broke? Because he used up all his cache!",
	"How many programmers does it take to change a light bulb? None, that's a hardware problem!",
	"Why do Python programmers prefer snakes? Because they're byte-friendly!",
	"What did the AI say to the programmer? You complete me... literally!",
}
