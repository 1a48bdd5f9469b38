package quizplease

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"quizreg/internal/domain"
)

// Page markers on the schedule and game pages. The site is a Webflow export;
// these class names have been stable across years.
const (
	scheduleBlockClass = "schedule-block-head"
	scheduleLinkClass  = "w-inline-block"
	headingClass       = "h2-game-card"
	infoColumnClass    = "game-info-column"
	infoTextClass      = "text"
	gameHeadingClass   = "game-heading-info"
)

// classicalTitle is the brand title that maps to the canonical classical game
// type in stored records.
const (
	brandTitle    = "Квиз, плиз!"
	classicalType = "классическая игра"
)

// parseSchedule extracts game references from the schedule page. Each game is
// an anchor block whose href carries the game id as its last query value; the
// block heading decides the category.
func parseSchedule(r io.Reader, targetHeading string) ([]domain.GameRef, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse schedule page: %w", err)
	}

	var refs []domain.GameRef
	for _, block := range findAll(doc, func(n *html.Node) bool {
		return hasClasses(n, scheduleBlockClass, scheduleLinkClass) && attrVal(n, "href") != ""
	}) {
		id := idFromHref(attrVal(block, "href"))
		if id == "" {
			continue
		}
		heading := findFirst(block, func(n *html.Node) bool {
			return hasClasses(n, headingClass)
		})
		if heading == nil {
			continue
		}
		title := collapsedText(heading)
		cat := domain.CategoryOther
		if title == targetHeading {
			cat = domain.CategoryTarget
		}
		refs = append(refs, domain.GameRef{ID: id, Category: cat, Title: title})
	}
	return refs, nil
}

// parseGamePage extracts the date/time/venue/type fields from a game page.
// The date column holds "<day> <month name> <time>"; the heading h1 holds the
// game type with the city suffix appended.
func parseGamePage(r io.Reader, citySuffix string) (*domain.GameDetails, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse game page: %w", err)
	}

	columns := findAll(doc, func(n *html.Node) bool {
		return n.Data == "div" && hasClasses(n, infoColumnClass)
	})
	if len(columns) < 3 {
		return nil, fmt.Errorf("game info columns missing: %w", domain.ErrNotFound)
	}
	dateNode := findFirst(columns[2], func(n *html.Node) bool {
		return n.Data == "div" && hasClasses(n, infoTextClass)
	})
	if dateNode == nil {
		return nil, fmt.Errorf("game date block missing: %w", domain.ErrNotFound)
	}
	fields := strings.Fields(collapsedText(dateNode))
	if len(fields) < 2 {
		return nil, fmt.Errorf("unexpected game date text %q: %w", collapsedText(dateNode), domain.ErrNotFound)
	}

	det := &domain.GameDetails{Day: fields[0], Month: fields[1]}
	if len(fields) > 2 {
		det.Time = fields[2]
	}
	if venueNode := findFirst(columns[0], func(n *html.Node) bool {
		return n.Data == "div" && hasClasses(n, infoTextClass)
	}); venueNode != nil {
		det.Venue = collapsedText(venueNode)
	}

	heading := findFirst(doc, func(n *html.Node) bool {
		return n.Data == "div" && hasClasses(n, gameHeadingClass)
	})
	if heading == nil {
		return nil, fmt.Errorf("game heading missing: %w", domain.ErrNotFound)
	}
	h1 := findFirst(heading, func(n *html.Node) bool { return n.Data == "h1" })
	if h1 == nil {
		return nil, fmt.Errorf("game heading title missing: %w", domain.ErrNotFound)
	}
	gameType := strings.ReplaceAll(collapsedText(h1), citySuffix, "")
	if gameType == brandTitle {
		gameType = classicalType
	}
	det.GameType = gameType

	return det, nil
}

// idFromHref returns the game id from a schedule href, historically the text
// after the last "=" (e.g. "/game-page?id=70123").
func idFromHref(href string) string {
	i := strings.LastIndex(href, "=")
	if i < 0 || i == len(href)-1 {
		return ""
	}
	return href[i+1:]
}

func hasClasses(n *html.Node, want ...string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	classes := strings.Fields(attrVal(n, "class"))
	for _, w := range want {
		found := false
		for _, c := range classes {
			if c == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collapsedText returns the node's text content with runs of whitespace
// collapsed to single spaces.
func collapsedText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
