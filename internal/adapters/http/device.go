package http

import (
	"regexp"
	"strings"
)

var (
	mobileUA = regexp.MustCompile(`iphone|ipod|android.*mobile|windows.*phone|mobile`)
	// Android without "mobile" is a tablet; the mobile case is caught above.
	tabletUA = regexp.MustCompile(`ipad|android`)
)

const (
	shareModeDeepLink = "deeplink"
	shareModeQR       = "qr"
)

// isDesktop reports whether the user agent looks like a PC browser, which
// cannot open LINE deep links directly.
func isDesktop(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	return !mobileUA.MatchString(ua) && !tabletUA.MatchString(ua)
}

func deviceOf(userAgent string) string {
	if isDesktop(userAgent) {
		return "desktop"
	}
	return "mobile"
}

func shareMode(userAgent string) string {
	if isDesktop(userAgent) {
		return shareModeQR
	}
	return shareModeDeepLink
}
