package service

import "strings"

// Query is a pointer for the same reason as the other request bodies:
// an empty query is a valid question that gets the default reply.
type AssistantQuery struct {
	Query *string `json:"query" validate:"required"`
}

func ValidateAssistantQuery(req *AssistantQuery) error {
	return validate.Struct(req)
}

// cannedReplies is scanned in order; the first keyword found as a
// substring of the lower-cased query wins.
var cannedReplies = []struct {
	keyword string
	reply   string
}{
	{"best time", "Tomorrow at 5 PM looks clear and lightly booked — perfect for your team!"},
	{"weather", "The weather looks great for the next 3 days. Tuesday might have some rain, so Monday or Wednesday would be ideal."},
	{"price", "Off-peak hours (10 AM - 2 PM) typically offer 20% lower rates. I'd recommend booking between 11 AM - 1 PM for the best value."},
	{"demand", "Based on current trends, weekday mornings have low demand while weekend evenings are in high demand. Consider booking Tuesday-Thursday for better availability."},
}

const defaultReply = "I can help you find the best time to play based on weather, demand, and pricing. What would you like to know?"

func AssistantReply(query string) string {
	lowered := strings.ToLower(query)
	for _, c := range cannedReplies {
		if strings.Contains(lowered, c.keyword) {
			return c.reply
		}
	}
	return defaultReply
}
