package extractor

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// block-level elements that imply a line break around their content
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "ul": true, "ol": true, "blockquote": true, "pre": true,
	"section": true, "article": true, "header": true, "footer": true,
}

// HTMLExtractor converts HTML documents into plain text
type HTMLExtractor struct {
	logger zerolog.Logger
}

// NewHTMLExtractor creates a new HTML extractor
func NewHTMLExtractor(logger zerolog.Logger) *HTMLExtractor {
	return &HTMLExtractor{
		logger: logger.With().Str("component", "HTMLExtractor").Logger(),
	}
}

// ExtractText parses the document, drops script/style/head content and
// walks the remaining nodes in order, inserting line breaks around
// block-level elements.
func (he *HTMLExtractor) ExtractText(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", common.WrapError(err, "failed to parse HTML document")
	}

	doc.Find("script, style, noscript, head").Remove()

	var out strings.Builder
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	for _, node := range body.Nodes {
		he.walk(node, &out)
	}

	return out.String(), nil
}

func (he *HTMLExtractor) walk(node *html.Node, out *strings.Builder) {
	if node.Type == html.TextNode {
		out.WriteString(node.Data)
		return
	}

	isBlock := node.Type == html.ElementNode && blockElements[node.Data]
	if isBlock {
		out.WriteByte('\n')
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		he.walk(child, out)
	}

	if isBlock {
		out.WriteByte('\n')
	}
}
