package creative

// Maximum lengths of the text assets of a native creative.
const (
	HeadlineMaxLength     = 25
	BodyMaxLength         = 90
	CallToActionMaxLength = 15
)

const ellipsis = "..."

// Truncate shortens s to max characters, ending in "..." when it had to cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	keep := max - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string(r[:keep]) + ellipsis
}
