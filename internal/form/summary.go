package form

import (
	"strconv"

	"github.com/verte-zerg/profileform/internal/i18n"
)

// SummaryLine is one labeled row of the summary block.
type SummaryLine struct {
	Label string
	Value string
}

// Summary is the view model shown after a successful submit.
type Summary struct {
	Title string
	Lines []SummaryLine
}

// BuildSummary projects snap into name, age, gender, subscription rows.
func BuildSummary(snap Snapshot, cat i18n.Catalog) Summary {
	gender := cat.Text(i18n.Male)
	if snap.Gender == Female {
		gender = cat.Text(i18n.Female)
	}
	subscription := cat.Text(i18n.No)
	if snap.Subscribed {
		subscription = cat.Text(i18n.Yes)
	}
	return Summary{
		Title: cat.Text(i18n.SummaryTitle),
		Lines: []SummaryLine{
			{Label: cat.Text(i18n.SummaryName), Value: snap.Name},
			{Label: cat.Text(i18n.SummaryAge), Value: strconv.Itoa(snap.Age)},
			{Label: cat.Text(i18n.SummaryGender), Value: gender},
			{Label: cat.Text(i18n.SummarySubscription), Value: subscription},
		},
	}
}

// SummaryFor returns the summary for s, or false when it is not shown.
func SummaryFor(s State, cat i18n.Catalog) (Summary, bool) {
	if !s.ShowSummary {
		return Summary{}, false
	}
	return BuildSummary(s.Snapshot(), cat), true
}
