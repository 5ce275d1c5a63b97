package layouts

import "strings"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title, businessName string) string {
	switch {
	case title != "" && businessName != "":
		return title + " - " + businessName
	case title != "":
		return title
	default:
		return businessName
	}
}

// CanonicalURL is the landing page address under baseURL, always with a trailing slash.
func CanonicalURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/"
}
