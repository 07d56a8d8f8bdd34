package contact

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://wa.me"

// LinkBuilder constructs WhatsApp deep links used to start a booking conversation.
type LinkBuilder struct {
	baseURL string
}

// NewLinkBuilder builds a LinkBuilder; an empty base URL falls back to wa.me.
func NewLinkBuilder(baseURL string) *LinkBuilder {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &LinkBuilder{baseURL: strings.TrimRight(baseURL, "/")}
}

// BookingLink returns the deep link for booking a slot with an instructor.
// The date must be the slot's calendar date and startTime its zero-padded HH:MM.
func (b *LinkBuilder) BookingLink(instructorName, phone string, date time.Time, startTime string) string {
	message := fmt.Sprintf(
		"Hi %s, I'm interested in booking a tennis lesson with you on %s at %s.",
		instructorName,
		date.Format("Mon, Jan 2, 2006"),
		startTime,
	)
	return fmt.Sprintf("%s/%s?text=%s", b.baseURL, phone, url.QueryEscape(message))
}
