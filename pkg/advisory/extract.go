package advisory

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// summaryCell marks the free-text summary of one advisory row on the
// listing page.
const summaryCell = "td.cvesummarylong"

// ExtractLink picks the single advisory link best matching the version
// tokens out of a listing page. Summary cells are scanned in document
// order and the first cell containing any token as a literal substring
// wins; document order is assumed to be the site's own relevance order.
// Returns "" when the tokens are empty, no cell matches, or the winning
// row does not carry a link in the expected place.
func ExtractLink(page []byte, tokens []string, site string) string {
	if len(tokens) == 0 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return ""
	}

	var link string
	doc.Find(summaryCell).EachWithBreak(func(i int, cell *goquery.Selection) bool {
		text := cell.Text()
		for _, token := range tokens {
			if !strings.Contains(text, token) {
				continue
			}

			if href, ok := resolveRowLink(cell); ok {
				link = site + href
			}
			return false
		}
		return true
	})

	return link
}

// resolveRowLink locates the advisory anchor that belongs to a summary
// cell: the first anchor of the row's second cell. The traversal is
// kept in one place so a site redesign only touches this helper; any
// deviation from the expected shape yields no link rather than a crash.
func resolveRowLink(cell *goquery.Selection) (string, bool) {
	row := cell.Closest("tr")
	if row.Length() == 0 {
		return "", false
	}

	anchor := row.Find("td").First().NextFiltered("td").Find("a").First()

	href, ok := anchor.Attr("href")
	if !ok || href == "" {
		return "", false
	}

	return href, true
}
