package chat

import "strings"

// Rule maps a group of trigger keywords to one canned response.
type Rule struct {
	Topic    string
	Keywords []string
	Response string
}

// Matches reports whether any keyword is a substring of the (lower-cased) text.
func (r Rule) Matches(normalized string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// Rules are evaluated top to bottom; the first match wins.
var Rules = []Rule{
	{
		Topic:    "plastic-waste",
		Keywords: []string{"plastic", "waste"},
		Response: "Great question about plastic waste! Here are some effective ways to reduce plastic usage:\n\n" +
			"🔹 Use reusable bags, bottles, and containers\n" +
			"🔹 Choose products with minimal packaging\n" +
			"🔹 Support businesses that use eco-friendly alternatives\n" +
			"🔹 Participate in local cleanup initiatives\n" +
			"🔹 Educate others about plastic pollution\n\n" +
			"Would you like specific tips for your age group or suggestions for school projects?",
	},
	{
		Topic:    "renewable-energy",
		Keywords: []string{"renewable energy"},
		Response: "Renewable energy is fantastic for our planet! Here are the main types:\n\n" +
			"☀️ Solar Energy - Harnesses sunlight\n" +
			"💨 Wind Energy - Uses wind turbines\n" +
			"💧 Hydroelectric - Uses flowing water\n" +
			"🌋 Geothermal - Uses Earth's heat\n" +
			"🌾 Biomass - Uses organic materials\n\n" +
			"These sources don't deplete natural resources and produce minimal pollution. Which type interests you most?",
	},
	{
		Topic:    "climate-change",
		Keywords: []string{"climate change"},
		Response: "Climate change significantly impacts ecosystems:\n\n" +
			"🌡️ Rising temperatures affect animal habitats\n" +
			"🌊 Sea level rise threatens coastal areas\n" +
			"❄️ Changing precipitation patterns affect plant growth\n" +
			"🦋 Species migration patterns are shifting\n" +
			"🌳 Forest fires are becoming more frequent\n\n" +
			"But there's hope! Conservation efforts, renewable energy, and individual actions can help. What specific ecosystem are you curious about?",
	},
	{
		Topic:    "water-conservation",
		Keywords: []string{"water", "conserve"},
		Response: "Water conservation is crucial! Here are practical tips:\n\n" +
			"🚿 Take shorter showers (save 2.5 gallons per minute)\n" +
			"🚰 Fix leaks promptly\n" +
			"🌧️ Collect rainwater for plants\n" +
			"🍃 Use drought-resistant plants in gardens\n" +
			"⚡ Install water-efficient appliances\n" +
			"🧽 Only run dishwashers/washing machines when full\n\n" +
			"Small changes make a big difference! Want tips specific to your living situation?",
	},
	{
		Topic:    "carbon-footprint",
		Keywords: []string{"carbon footprint"},
		Response: "Your carbon footprint is the total greenhouse gases you produce! Here's how to reduce it:\n\n" +
			"🏠 Home: Use energy-efficient appliances, improve insulation\n" +
			"🚗 Transport: Walk, bike, use public transport, carpool\n" +
			"🍽️ Food: Eat more plants, buy local, reduce food waste\n" +
			"♻️ Consumption: Buy less, reuse more, recycle properly\n" +
			"⚡ Energy: Switch to renewable energy sources\n\n" +
			"Track your progress and celebrate small victories! Would you like help calculating your current footprint?",
	},
	{
		Topic:    "recycling",
		Keywords: []string{"recycle", "recycling"},
		Response: "Starting a recycling program is impactful! Here's a step-by-step guide:\n\n" +
			"📋 Step 1: Assess current waste streams\n" +
			"📍 Step 2: Research local recycling facilities\n" +
			"👥 Step 3: Build a team of volunteers\n" +
			"📚 Step 4: Educate your community\n" +
			"🗂️ Step 5: Set up collection systems\n" +
			"📊 Step 6: Monitor and measure success\n\n" +
			"Remember: Reduce and Reuse come before Recycle! Need help with any specific step?",
	},
}

// FallbackTopic is reported by Match when no rule matched.
const FallbackTopic = "fallback"

// FallbackResponse redirects the user to the topics the rules know about.
const FallbackResponse = "That's an interesting environmental question! While I don't have a specific answer for that, I encourage you to:\n\n" +
	"🔍 Research from reliable environmental sources\n" +
	"👥 Discuss with your teacher or classmates\n" +
	"📚 Explore our game mode for interactive learning\n" +
	"📸 Document related observations in your photo journal\n\n" +
	"I'm constantly learning too! Feel free to ask about plastic waste, renewable energy, climate change, water conservation, or recycling. What would you like to explore?"

// Match returns the topic and response of the first rule matching text, or the fallback.
func Match(text string) (topic, response string) {
	normalized := strings.ToLower(text)
	for _, r := range Rules {
		if r.Matches(normalized) {
			return r.Topic, r.Response
		}
	}
	return FallbackTopic, FallbackResponse
}

// Classify returns the canned response for text. It is pure: the same text always gets the same response.
func Classify(text string) string {
	_, response := Match(text)
	return response
}
