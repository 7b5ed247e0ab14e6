package layouts

// CalculateTitle builds the document title from the page title and the site
// name.
func CalculateTitle(title, site string) string {
	if title != "" {
		return title + " - " + site
	}
	return site
}
