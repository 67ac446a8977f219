package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehlab1/Turf-Booking-POC/internal/service"
)

func TestAssistantReplyKeywords(t *testing.T) {
	reply := service.AssistantReply("What's the best time to book?")
	assert.Contains(t, reply, "Tomorrow at 5 PM")

	reply = service.AssistantReply("How is the WEATHER looking?")
	assert.Contains(t, reply, "next 3 days")

	reply = service.AssistantReply("any price tips")
	assert.Contains(t, reply, "Off-peak hours")

	reply = service.AssistantReply("when is demand lowest")
	assert.Contains(t, reply, "weekday mornings")
}

func TestAssistantReplyDefault(t *testing.T) {
	reply := service.AssistantReply("hello")
	assert.True(t, strings.HasPrefix(reply, "I can help you"))
}

func TestAssistantReplyPrecedence(t *testing.T) {
	// "best time" is checked before "weather" and "price"
	reply := service.AssistantReply("best time given weather and price?")
	assert.Contains(t, reply, "Tomorrow at 5 PM")

	// "weather" is checked before "price"
	reply = service.AssistantReply("weather vs price")
	assert.Contains(t, reply, "next 3 days")
}
