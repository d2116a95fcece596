package telemetry

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"radsafe/internal/models"
)

// Greeting is the assistant's opening message.
const Greeting = "Hello! I'm your RadSafe AI assistant. I can help you with radiation safety questions, explain readings, or provide guidance. How can I assist you today?"

// fallbackReply is used when no keyword rule matches, mirroring the
// client's offline answer.
const fallbackReply = "For radiation safety questions, remember that levels below 0.3 µSv/h are generally safe for prolonged exposure. Please try again later or ask a different question."

type assistantRule struct {
	keywords []string
	reply    string
}

var assistantRules = []assistantRule{
	{
		keywords: []string{"level", "reading", "current"},
		reply:    "Your current environment reads within the normal background band of 0.10-0.20 µSv/h. Nothing to worry about.",
	},
	{
		keywords: []string{"safe", "danger", "risk"},
		reply:    "Levels below 0.25 µSv/h are considered safe background radiation. Between 0.25 and 0.50 µSv/h is elevated; sustained readings above 0.50 µSv/h should be reported.",
	},
	{
		keywords: []string{"alert", "warning", "notification"},
		reply:    "Alerts fire when a sensor reports an elevated level or a device needs attention. You can review and clear them on the Alerts screen.",
	},
	{
		keywords: []string{"sensor", "device", "battery"},
		reply:    "Connected sensors report battery and signal on the IoT screen. A sensor below 20% battery raises a warning alert.",
	},
	{
		keywords: []string{"protect", "shield", "exposure", "reduce"},
		reply:    "The basics: increase distance from the source, limit exposure time, and keep shielding between you and it. Distance is the cheapest of the three.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    Greeting,
	},
}

// Reply produces the assistant's canned answer for a user message.
func Reply(message string) string {
	lowered := strings.ToLower(message)
	for _, rule := range assistantRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.reply
			}
		}
	}
	return fallbackReply
}

// NewChatMessage wraps text in a message envelope.
func NewChatMessage(sender string, text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
}
