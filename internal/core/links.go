package core

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink appends text to the messaging deep link as the URL-encoded text parameter.
// The text is not otherwise validated.
func WhatsAppLink(base, text string) string {
	base = strings.TrimRight(base, "?&")
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	// Spaces become %20 rather than "+", which some chat clients show literally.
	return base + sep + "text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// ContactLinkText is the hand-off message sent after the contact form.
func ContactLinkText(name, theme string) string {
	return fmt.Sprintf("Hi, I just submitted a form for my %s store. My name is %s.", theme, name)
}

// PlanLinkText is the hand-off message for a pricing plan.
func PlanLinkText(planName string) string {
	return "Hi, I am interested in the " + planName
}
