package domain

// Placeholders substituted when a field cannot be extracted.
const (
	DefaultPostedDate  = "Recently Posted"
	DefaultDetail      = "Check Details"
	DefaultDescription = "Click link for full details"
)

// Descriptions are capped at DescriptionLimit runes followed by TruncationMarker.
const (
	DescriptionLimit = 200
	TruncationMarker = "..."
)

type JobRecord struct {
	Title         string   `json:"title"`
	Category      Category `json:"category"`
	URL           string   `json:"url"`
	PostedDate    string   `json:"posted_date"`
	Qualification string   `json:"qualification"`
	Experience    string   `json:"experience"`
	Description   string   `json:"description"`
}

// NewJobRecord returns a record with every optional field set to its placeholder.
func NewJobRecord(title string, cat Category, url string) JobRecord {
	return JobRecord{
		Title:         title,
		Category:      cat,
		URL:           url,
		PostedDate:    DefaultPostedDate,
		Qualification: DefaultDetail,
		Experience:    DefaultDetail,
		Description:   DefaultDescription,
	}
}

// Fields returns the record in export column order.
func (j JobRecord) Fields() []string {
	return []string{
		j.Title,
		string(j.Category),
		j.URL,
		j.PostedDate,
		j.Qualification,
		j.Experience,
		j.Description,
	}
}

// FieldNames is the export header matching Fields.
var FieldNames = []string{"title", "category", "url", "posted_date", "qualification", "experience", "description"}
