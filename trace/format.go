package trace

import (
	"fmt"
	"strings"
)

// FormatTree renders t as an indented tree using box-drawing
// connectors, optionally colored with ANSI escapes.
func FormatTree(t *Trace, color bool) string {
	var b strings.Builder
	formatNode(&b, t.Root, "", true, color)
	return b.String()
}

func formatNode(b *strings.Builder, n *Node, prefix string, last bool, color bool) {
	connector := "├─ "
	childPrefix := prefix + "│  "
	if last {
		connector = "└─ "
		childPrefix = prefix + "   "
	}

	glyph, text := outcomeGlyph(n, color)
	fmt.Fprintf(b, "%s%s%s(%q) %s\n", prefix, connector, n.Name, n.Input, glyph+text)

	for i, child := range n.Children {
		formatNode(b, child, childPrefix, i == len(n.Children)-1, color)
	}
}

func outcomeGlyph(n *Node, color bool) (glyph, text string) {
	const (
		green = "\x1b[32m"
		red   = "\x1b[31m"
		reset = "\x1b[0m"
	)
	switch n.Outcome.Status {
	case Success:
		text = fmt.Sprintf("✓ → %s", n.Outcome.Preview)
		if color {
			return green, text + reset
		}
		return "", text
	case Failure:
		text = fmt.Sprintf("✗ %s", n.Outcome.Err)
		if color {
			return red, text + reset
		}
		return "", text
	default:
		return "", "..."
	}
}
