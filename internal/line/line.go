// Package line builds LINE deep links for an official account.
package line

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultAccountID is the official account the links point at.
const DefaultAccountID = "@042rsqoj"

const (
	addFriendFormat  = "https://line.me/R/ti/p/%s"
	oaMessageFormat  = "https://line.me/R/oaMessage/%s/?text=%s"
	qrFallbackFormat = "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=%s"
)

// Links renders the deep links for one account.
type Links struct {
	accountID string
}

func New(accountID string) (Links, error) {
	if strings.TrimSpace(accountID) == "" {
		return Links{}, fmt.Errorf("line account id is required")
	}
	return Links{accountID: accountID}, nil
}

func (l Links) AccountID() string { return l.accountID }

// AddFriendURL opens the add-contact flow for the account.
func (l Links) AddFriendURL() string {
	return fmt.Sprintf(addFriendFormat, l.accountID)
}

// MessageURL opens a chat with the account with text pre-filled.
func (l Links) MessageURL(text string) string {
	return fmt.Sprintf(oaMessageFormat, l.accountID, EncodeComponent(text))
}

// QRFallbackURL is an image URL for a QR code of the add-friend link, used
// when no local encoder is available.
func (l Links) QRFallbackURL() string {
	return fmt.Sprintf(qrFallbackFormat, EncodeComponent(l.AddFriendURL()))
}

// EncodeComponent percent-encodes s for use as a single query value.
// Spaces become %20 rather than +, as browsers' encodeURIComponent does.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
