package chat

type Tip struct {
	Icon     string `json:"icon" yaml:"icon"`
	Tip      string `json:"tip" yaml:"tip"`
	Category string `json:"category" yaml:"category"`
}

type Suggestions struct {
	QuickQuestions []string `json:"quick_questions"`
	Tips           []Tip    `json:"tips"`
}

var (
	QuickQuestions = []string{
		"How can I reduce plastic waste?",
		"What are renewable energy sources?",
		"How does climate change affect ecosystems?",
		"Best ways to conserve water at home?",
		"How to start a recycling program?",
		"What is carbon footprint?",
	}

	EnvironmentalTips = []Tip{
		{Icon: "💡", Tip: "Switch to LED bulbs to save 75% more energy than traditional bulbs", Category: "Energy"},
		{Icon: "🌱", Tip: "Plant native species in your garden to support local wildlife", Category: "Biodiversity"},
		{Icon: "🚲", Tip: "Bike or walk for short trips to reduce carbon emissions", Category: "Transportation"},
		{Icon: "💧", Tip: "Fix leaky faucets immediately - a single drop per second wastes 5 gallons per day", Category: "Water"},
	}
)

func GetSuggestions() Suggestions {
	return Suggestions{
		QuickQuestions: append([]string(nil), QuickQuestions...),
		Tips:           append([]Tip(nil), EnvironmentalTips...),
	}
}

// Greeting is the assistant's opening message of a new conversation.
func Greeting(name string) string {
	return "Hello " + name + "! I'm your Environmental Assistant. I'm here to help you with environmental questions, " +
		"provide solutions to eco-problems, and guide you through your green journey. What would you like to know?"
}
