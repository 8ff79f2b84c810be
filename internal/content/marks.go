package content

// markLabels maps normalized publication marks to their display labels.
var markLabels = map[string]string{
	"award":         "Award",
	"best":          "Best Paper",
	"corresponding": "Corresponding Author",
	"first":         "First Author",
	"kci":           "KCI",
	"oral":          "Oral",
	"poster":        "Poster",
	"sci":           "SCI",
	"scie":          "SCIE",
	"scopus":        "Scopus",
	"spotlight":     "Spotlight",
	"top":           "Top-tier",
}

// MarkLabel returns the display label for a mark. Unknown marks pass
// through verbatim.
func MarkLabel(mark string) string {
	if label, ok := markLabels[mark]; ok {
		return label
	}
	return mark
}
