package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// GetText concatenates every text node under `node`.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer, false)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer, breakLines bool) {
	if node == nil {
		return
	}
	switch {
	case node.Type == html.TextNode:
		buffer.WriteString(node.Data)
		return
	case breakLines && node.Type == html.ElementNode && node.DataAtom == atom.Br:
		buffer.WriteByte('\n')
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer, breakLines)
		child = child.NextSibling
	}
}

// GetLines returns the text under `node` split into trimmed lines,
// <br> elements count as line breaks just like literal newlines do.
func GetLines(node *html.Node) []string {
	var buffer bytes.Buffer
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, &buffer, true)
		child = child.NextSibling
	}

	lines := strings.Split(buffer.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// EmptyDocument is a valid document without any content.
func EmptyDocument() *goquery.Document {
	return goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
}
