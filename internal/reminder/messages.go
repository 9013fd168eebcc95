package reminder

import "math/rand"

// reminderMessages is the fixed pool of hydration notification texts; one
// is chosen uniformly at random per firing.
var reminderMessages = []string{
	"Time to hydrate! 💧 Your body will thank you!",
	"Drink up! 🥤 Stay refreshed and energized!",
	"Hydration check! 💦 Keep that water flowing!",
	"Your daily H2O reminder! 🌊 Sip sip hooray!",
	"Water break time! 💧 Stay healthy, stay hydrated!",
	"Thirsty? 🥛 Time for some refreshing water!",
	"Hydration station! 💦 Fuel your body with water!",
	"Drop what you're doing! 💧 It's water time!",
	"Stay cool, stay hydrated! 🧊 Drink some water!",
	"Water you waiting for? 💧 Time to hydrate!",
}

// RandomMessage picks one hydration reminder message from the fixed pool.
func RandomMessage() string {
	return reminderMessages[rand.Intn(len(reminderMessages))]
}

// Messages returns the full message pool.
func Messages() []string {
	messages := make([]string, len(reminderMessages))
	copy(messages, reminderMessages)
	return messages
}
