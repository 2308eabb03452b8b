package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobyaari-engine/internal/scrape/util"
)

type Field int

const (
	FieldTitle Field = iota
	FieldLink
	FieldPostedDate
	FieldQualification
	FieldExperience
	FieldDescription
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldLink:
		return "link"
	case FieldPostedDate:
		return "posted_date"
	case FieldQualification:
		return "qualification"
	case FieldExperience:
		return "experience"
	case FieldDescription:
		return "description"
	}
	return "unknown"
}

// Rule locates one field inside a fragment: the first descendant whose tag is in Tags,
// whose class attribute matches Label (nil matches anything) and which yields a non-empty value.
// Attr selects an attribute as the value instead of the element text.
type Rule struct {
	Field Field
	Tags  []string
	Label *regexp.Regexp
	Attr  string
}

func label(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

// DefaultRules is tried top to bottom; the first rule producing a value for a field wins.
// Patch this table (or pass another to NewExtractor) when the site markup drifts.
var DefaultRules = []Rule{
	{Field: FieldTitle, Tags: []string{"h2", "h3", "h4", "a"}, Label: label(`title|heading|name`)},
	{Field: FieldTitle, Tags: []string{"h2", "h3", "h4", "a"}},
	{Field: FieldLink, Tags: []string{"a"}, Attr: "href"},
	{Field: FieldPostedDate, Tags: []string{"span", "time", "div"}, Label: label(`date|time|posted`)},
	{Field: FieldQualification, Tags: []string{"span", "div", "p"}, Label: label(`qualification|education|degree`)},
	{Field: FieldExperience, Tags: []string{"span", "div", "p"}, Label: label(`experience|exp|year`)},
	{Field: FieldDescription, Tags: []string{"p", "div"}, Label: label(`description|content|summary`)},
}

// DefaultFragmentRule selects the candidate posting fragments on a category page.
var DefaultFragmentRule = Rule{Tags: []string{"div", "article", "li"}, Label: label(`job|post|item|entry`)}

func (r Rule) selector() string {
	return strings.Join(r.Tags, ", ")
}

func (r Rule) labelled(s *goquery.Selection) bool {
	if r.Label == nil {
		return true
	}
	class, ok := s.Attr("class")
	return ok && r.Label.MatchString(class)
}

// All returns every descendant of root matching tag and label, in document order.
func (r Rule) All(root *goquery.Selection) *goquery.Selection {
	return root.Find(r.selector()).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return r.labelled(s)
	})
}

// Value returns the first non-empty value this rule yields under root.
func (r Rule) Value(root *goquery.Selection) (string, bool) {
	var out string
	r.All(root).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var v string
		if r.Attr != "" {
			v, _ = s.Attr(r.Attr)
			v = strings.TrimSpace(v)
		} else {
			v = util.CleanText(s.Text())
		}
		if v == "" {
			return true
		}
		out = v
		return false
	})
	return out, out != ""
}
