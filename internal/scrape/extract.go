package scrape

import (
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/scrape/util"
)

var (
	ErrNoTitle           = errors.New("fragment has no title element")
	ErrMalformedFragment = errors.New("malformed fragment")
)

type Extractor struct {
	baseURL string
	rules   []Rule
}

// NewExtractor uses DefaultRules when rules is empty.
func NewExtractor(baseURL string, rules []Rule) *Extractor {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Extractor{baseURL: baseURL, rules: rules}
}

// Extract turns one posting fragment into a record. The title is the only required field;
// everything else falls back to its placeholder.
func (e *Extractor) Extract(frag *goquery.Selection, cat domain.Category) (job domain.JobRecord, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			job = domain.JobRecord{}
			err = fmt.Errorf("%w: %v", ErrMalformedFragment, rec)
		}
	}()
	if frag == nil || frag.Length() == 0 {
		return domain.JobRecord{}, ErrNoTitle
	}

	found := make(map[Field]string, 6)
	for _, r := range e.rules {
		if _, done := found[r.Field]; done {
			continue
		}
		if v, ok := r.Value(frag); ok {
			found[r.Field] = v
		}
	}

	title, ok := found[FieldTitle]
	if !ok {
		return domain.JobRecord{}, ErrNoTitle
	}

	job = domain.NewJobRecord(title, cat, e.baseURL)
	if href, ok := found[FieldLink]; ok {
		job.URL = util.ResolveURL(e.baseURL, href)
	}
	if v, ok := found[FieldPostedDate]; ok {
		job.PostedDate = v
	}
	if v, ok := found[FieldQualification]; ok {
		job.Qualification = v
	}
	if v, ok := found[FieldExperience]; ok {
		job.Experience = v
	}
	if v, ok := found[FieldDescription]; ok {
		job.Description = util.Truncate(v, domain.DescriptionLimit, domain.TruncationMarker)
	}
	return job, nil
}

// Fragments returns the first max candidate posting fragments under root (max <= 0 means all).
func Fragments(root *goquery.Selection, rule Rule, max int) *goquery.Selection {
	all := rule.All(root)
	if max > 0 && all.Length() > max {
		return all.Slice(0, max)
	}
	return all
}
