package extractor

import (
	"html"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// titleEntities are decoded before the generic unescape so the typographic
// apostrophe and dash come out the way names are usually typed.
var titleEntities = strings.NewReplacer(
	"&#8217;", "'",
	"&#8216;", "'",
	"&#8211;", "–",
	"&amp;", "&",
)

// typography folds characters the HTML tokenizer produces back to ASCII.
var typography = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"…", "...",
	"\u00a0", " ",
)

var spaceRun = regexp.MustCompile(`\s+`)

// blockElements separate words when their tags are dropped.
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Br: true, atom.Div: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Tr: true, atom.Td: true, atom.Figure: true, atom.Figcaption: true,
}

// CleanTitle decodes entities in a rendered post title.
func CleanTitle(title string) string {
	return strings.TrimSpace(html.UnescapeString(titleEntities.Replace(title)))
}

// PlainText strips tags from an HTML fragment, decodes entities and
// collapses whitespace. Script and style bodies are dropped.
func PlainText(fragment string) string {
	if fragment == "" {
		return ""
	}

	var sb strings.Builder
	skip := 0
	z := xhtml.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			return normalize(sb.String())
		case xhtml.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Script || a == atom.Style {
				if tt == xhtml.StartTagToken {
					skip++
				} else if tt == xhtml.EndTagToken && skip > 0 {
					skip--
				}
				continue
			}
			if blockElements[a] {
				sb.WriteByte(' ')
			}
		}
	}
}

func normalize(s string) string {
	s = typography.Replace(s)
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
