package models

// Tip is a generic money-saving tip shown on the dashboard and passed to the
// suggestion generator as context.
type Tip struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// DefaultTips returns the built-in saving tips for students.
func DefaultTips() []Tip {
	return []Tip{
		{ID: "t1", Text: "Always ask for a student discount when shopping, even for online subscriptions."},
		{ID: "t2", Text: "Review your monthly subscriptions. Cancel any you haven't used in the last month."},
		{ID: "t3", Text: "Try to eat most of your meals from the mess. It's almost always cheaper than the canteen or outside."},
		{ID: "t4", Text: "Buy used textbooks or use the library instead of purchasing new ones for every course."},
		{ID: "t5", Text: "Limit expensive coffee habits. Making your own can save you a significant amount over a semester."},
	}
}

// TipTexts returns just the tip strings, the shape the suggestion prompt wants.
func TipTexts() []string {
	tips := DefaultTips()
	texts := make([]string, 0, len(tips))
	for _, tip := range tips {
		texts = append(texts, tip.Text)
	}
	return texts
}
