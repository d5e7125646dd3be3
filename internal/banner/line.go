package banner

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultWidth is the target length of banner and rule lines.
	DefaultWidth = 77

	// Marker opens every banner line and stands alone above and below blocks.
	Marker = "//#"

	closeMarker = "#"
	markerLen   = 3
)

// FillOrder selects which side of the centre receives the first unit of
// padding in each centre-out step.
type FillOrder int

const (
	// RightFirst pads the slot right of centre before the one left of it.
	RightFirst FillOrder = iota
	// LeftFirst pads the slot left of centre first.
	LeftFirst
)

// String returns the configuration spelling of the order.
func (o FillOrder) String() string {
	if o == LeftFirst {
		return "left-first"
	}
	return "right-first"
}

// ParseFillOrder maps "left-first" and "right-first" to a FillOrder.
// Anything else yields RightFirst and false.
func ParseFillOrder(s string) (FillOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left-first":
		return LeftFirst, true
	case "right-first", "":
		return RightFirst, true
	}
	return RightFirst, false
}

// Formatter renders banner lines.
type Formatter struct {
	Order FillOrder
}

// FormatLine renders a banner line with the default fill order.
func FormatLine(label string, width int) string {
	return Formatter{}.Format(label, width)
}

// Format returns a banner line of width characters embedding label. When a
// single copy of label does not fit, the line holds exactly one copy and is
// longer than width; it is never truncated.
func (f Formatter) Format(label string, width int) string {
	labelLen := utf8.RuneCountInString(label)
	slots := f.padding(labelLen, width)
	count := len(slots) / 2

	var b strings.Builder
	b.Grow(width + labelLen)
	b.WriteString(Marker)
	for i := 0; i < count; i++ {
		b.WriteString(strings.Repeat(" ", slots[2*i]))
		b.WriteByte(' ')
		b.WriteString(label)
		b.WriteByte(' ')
		b.WriteString(strings.Repeat(" ", slots[2*i+1]))
		b.WriteString(closeMarker)
	}
	return b.String()
}

// padding returns the number of extra spaces before and after each label
// copy: slot 2i precedes copy i and slot 2i+1 follows it.
func (f Formatter) padding(labelLen, width int) []int {
	unit := labelLen + 3 // leading space, trailing space, closing marker
	avail := width - markerLen

	count := avail / unit
	if count < 1 {
		count = 1
	}
	slack := avail - count*unit
	if slack < 0 {
		slack = 0
	}

	slots := make([]int, 2*count)
	for slack > 0 {
		for i := 0; slack > 0 && i < count; i++ {
			first, second := count+i, count-i-1
			if f.Order == LeftFirst {
				first, second = second, first
			}
			slots[first]++
			slack--
			if slack > 0 {
				slots[second]++
				slack--
			}
		}
	}
	return slots
}

// RuleLine returns "//" followed by '#' up to width characters.
func RuleLine(width int) string {
	return "//" + strings.Repeat("#", max(width-2, 0))
}

// SeparatorLine returns "//" followed by '-' up to width characters.
func SeparatorLine(width int) string {
	return "//" + strings.Repeat("-", max(width-2, 0))
}

var bannerLinePattern = regexp.MustCompile(
	`^\s*//#\s*[A-Za-z_]\w*(?:::[A-Za-z_]\w*)*(?:\s+#\s*[A-Za-z_]\w*(?:::[A-Za-z_]\w*)*)*\s*#?\s*$`)

// IsBannerLine reports whether line looks like a banner line produced by
// Format for some class name, possibly indented.
func IsBannerLine(line string) bool {
	return bannerLinePattern.MatchString(line)
}

// FindEnclosing returns the nearest banner lines strictly above and strictly
// below cursorLine. ok is false unless both exist.
func FindEnclosing(lines []string, cursorLine int) (above, below int, ok bool) {
	above, below = -1, -1
	for i := min(cursorLine-1, len(lines)-1); i >= 0; i-- {
		if IsBannerLine(lines[i]) {
			above = i
			break
		}
	}
	for i := max(cursorLine+1, 0); i < len(lines); i++ {
		if IsBannerLine(lines[i]) {
			below = i
			break
		}
	}
	return above, below, above >= 0 && below >= 0
}
