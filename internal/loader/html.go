package loader

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// unwantedSelectors never carry searchable prose.
var unwantedSelectors = []string{
	"script", "style", "meta", "link", "noscript", "iframe", "svg",
	".sidebar", "header", "footer", ".nav", ".menu", "#sidebar",
	".navigation", ".toc", "#toc", ".footer", "#footer",
}

// htmlToText decodes an HTML document, keeps its main content and renders
// it as Markdown.
func (l *Loader) htmlToText(raw []byte) (string, error) {
	decoded, err := decodeHTML(raw)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decoded))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	content := mainContent(doc)
	if content == nil {
		l.log.Warn("no main content found in html target")
		return "", nil
	}
	for _, selector := range unwantedSelectors {
		content.Find(selector).Remove()
	}

	mainHTML, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}

	markdown, err := l.mdConverter.ConvertString(mainHTML)
	if err != nil {
		return "", fmt.Errorf("failed to convert to markdown: %w", err)
	}

	return postProcess(markdown), nil
}

// mainContent prefers main, then article, then div.content, then body.
func mainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"main", "article", "div.content", "body"} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// decodeHTML converts raw bytes to UTF-8 using the charset declared by a
// BOM or meta tag, defaulting to UTF-8.
func decodeHTML(raw []byte) (string, error) {
	enc, name, _ := charset.DetermineEncoding(raw, "text/html")
	reader := transform.NewReader(bytes.NewReader(raw), enc.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return string(decoded), nil
}

func postProcess(markdown string) string {
	markdown = blankRuns.ReplaceAllString(markdown, "\n\n")

	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	markdown = strings.TrimSpace(strings.Join(lines, "\n"))
	if markdown == "" {
		return ""
	}
	return markdown + "\n"
}
