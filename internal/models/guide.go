package models

// GuideCategory groups guides on the listing page.
type GuideCategory string

const (
	GuideInstallation GuideCategory = "installation"
	GuideMaintenance  GuideCategory = "maintenance"
	GuideInspiration  GuideCategory = "inspiration"
	GuideTips         GuideCategory = "tips"
)

// Guide is an editorial article with light pseudo-markdown content.
// Headings for the table of contents are derived from Content by a pure
// line scan (## prefixed lines).
type Guide struct {
	ID              string        `json:"id"`
	Slug            string        `json:"slug"`
	Title           string        `json:"title"`
	Excerpt         string        `json:"excerpt"`
	Content         string        `json:"content"`
	Image           string        `json:"image"`
	ReadTime        int           `json:"read_time"` // minutes
	Category        GuideCategory `json:"category"`
	RelatedProducts []string      `json:"related_products"`
	PublishedAt     string        `json:"published_at"`
}

// FAQCategory groups support questions.
type FAQCategory string

const (
	FAQGeneral      FAQCategory = "general"
	FAQOrdering     FAQCategory = "ordering"
	FAQInstallation FAQCategory = "installation"
	FAQMaintenance  FAQCategory = "maintenance"
	FAQReturns      FAQCategory = "returns"
)

// FAQCategories lists the categories in display order.
var FAQCategories = []FAQCategory{FAQGeneral, FAQOrdering, FAQInstallation, FAQMaintenance, FAQReturns}

// FAQItem is a support-page question.
type FAQItem struct {
	ID       string      `json:"id"`
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Category FAQCategory `json:"category"`
}
