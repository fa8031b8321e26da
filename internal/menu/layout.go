package menu

// Layout carries the per-source presentation knobs: the frame title,
// the plural noun for the scroll indicator, how much of the frame the
// name column may take, and the verbs used in the footer and banners.
type Layout struct {
	// Title is the centered header line, e.g. "🚀 Task Menu".
	Title string
	// Noun names the items in "Showing X-Y of N <noun>".
	Noun string
	// NameDivisor caps the name column at availableWidth/NameDivisor:
	// 2 when the two columns are comparable, 3 when the detail column
	// holds long free-form text.
	NameDivisor int
	// SelectVerb is the Enter action shown in the footer ("Select",
	// "Attach").
	SelectVerb string
	// RunVerb opens the activation banner ("Running task",
	// "Attaching to session").
	RunVerb string
	// EmptyMessage is shown when the source returns no items and no
	// specific reason.
	EmptyMessage string
}
