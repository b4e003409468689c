package proof

import (
	"strings"
	"unicode/utf8"
)

// premiseGap separates the two premise blocks of a binary rule.
const premiseGap = "    "

// Render lays out a derivation as a multi-line ASCII diagram: each
// node's premise block sits above a dashed inference line labeled with
// the rule symbol, with the conclusion sequent centered underneath.
//
// Centering never disturbs lines already laid out: a narrower conclusion
// is padded and centered over the non-indentation body of the block
// above, a wider one shifts the whole block right instead. Every line of
// the result is padded to a uniform width, measured in runes.
func Render(node LK) string {
	premises := Premises(node)
	if len(premises) == 0 {
		return node.Conclusion().String()
	}

	var parent string
	if len(premises) == 1 {
		parent = Render(premises[0])
	} else {
		parent = sideBySide(Render(premises[0]), Render(premises[1]))
	}
	return joinConclusion(parent, node.Conclusion().String(), Label(node))
}

// sideBySide places two rendered premise blocks next to each other,
// top-padding the shorter block with blank lines of its own width so
// every row keeps its column.
func sideBySide(left, right string) string {
	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")

	leftLines = padHeight(leftLines, len(rightLines))
	rightLines = padHeight(rightLines, len(leftLines))

	rows := make([]string, len(leftLines))
	for i := range leftLines {
		rows[i] = leftLines[i] + premiseGap + rightLines[i]
	}
	return strings.Join(rows, "\n")
}

func padHeight(lines []string, height int) []string {
	if len(lines) >= height {
		return lines
	}
	blank := spaces(runeLen(lines[0]))
	padded := make([]string, 0, height)
	for i := len(lines); i < height; i++ {
		padded = append(padded, blank)
	}
	return append(padded, lines...)
}

// joinConclusion appends the inference line and the centered conclusion
// under an already-rendered premise block.
func joinConclusion(parent, sequent, label string) string {
	lines := strings.Split(parent, "\n")
	last := lines[len(lines)-1]
	prefix := leadingSpaces(last)
	suffix := trailingSpaces(last)
	body := runeLen(last) - prefix - suffix
	seqLen := runeLen(sequent)

	offset := (body-seqLen)/2 + prefix
	if offset < 0 {
		// conclusion is wider than the block above: shift the block right
		shift := spaces(-offset)
		for i := range lines {
			lines[i] = shift + lines[i]
		}
		prefix -= offset
		offset = 0
	}

	var sep string
	if seqLen > body {
		sep = spaces(offset) + strings.Repeat("-", seqLen+1) + label
	} else {
		sep = spaces(prefix) + strings.Repeat("-", body+1) + label
	}

	lines = append(lines, sep, spaces(offset)+sequent)
	return padUniform(lines)
}

// padUniform post-pads every line with spaces to the width of the widest.
func padUniform(lines []string) string {
	width := 0
	for _, line := range lines {
		if n := runeLen(line); n > width {
			width = n
		}
	}
	for i, line := range lines {
		lines[i] = line + spaces(width-runeLen(line))
	}
	return strings.Join(lines, "\n")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func leadingSpaces(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}

func trailingSpaces(s string) int {
	runes := []rune(s)
	n := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] != ' ' {
			break
		}
		n++
	}
	return n
}
