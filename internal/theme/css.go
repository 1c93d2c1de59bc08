package theme

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"time"
)

//go:embed base.css
var baseCSS string

// RevealDuration is the transition time of data-reveal entrance animations.
const RevealDuration = 600 * time.Millisecond

// Stylesheet renders the tokens as CSS. The output depends only on t: map
// entries are emitted in sorted key order.
func Stylesheet(t Tokens) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	for _, scale := range sortedKeys(t.Colors) {
		for _, shade := range sortedKeys(t.Colors[scale]) {
			fmt.Fprintf(&b, "  --color-%s-%s: %s;\n", scale, shade, t.Colors[scale][shade])
		}
	}
	fmt.Fprintf(&b, "  --font-sans: %s;\n", fontStack(t.FontSans))
	fmt.Fprintf(&b, "  --font-mono: %s;\n", fontStack(t.FontMono))
	b.WriteString("}\n\n")

	for _, scale := range sortedKeys(t.Colors) {
		for _, shade := range sortedKeys(t.Colors[scale]) {
			v := fmt.Sprintf("var(--color-%s-%s)", scale, shade)
			fmt.Fprintf(&b, ".text-%s-%s { color: %s; }\n", scale, shade, v)
			fmt.Fprintf(&b, ".bg-%s-%s { background-color: %s; }\n", scale, shade, v)
			fmt.Fprintf(&b, ".border-%s-%s { border-color: %s; }\n", scale, shade, v)
		}
	}
	b.WriteString("\n")

	for _, name := range sortedKeys(t.Keyframes) {
		fmt.Fprintf(&b, "@keyframes %s {\n", name)
		for _, kf := range t.Keyframes[name] {
			fmt.Fprintf(&b, "  %s {", strings.Join(kf.Offsets, ", "))
			for _, p := range kf.Props {
				fmt.Fprintf(&b, " %s: %s;", p.Name, p.Value)
			}
			b.WriteString(" }\n")
		}
		b.WriteString("}\n")
	}
	b.WriteString("\n")

	for _, name := range sortedKeys(t.Animations) {
		fmt.Fprintf(&b, ".animate-%s { animation: %s; }\n", name, t.Animations[name].shorthand(name))
	}
	b.WriteString("\n")

	for _, name := range sortedKeys(t.BackgroundImages) {
		fmt.Fprintf(&b, ".bg-%s { background-image: %s; }\n", name, t.BackgroundImages[name])
	}
	b.WriteString("\n")

	reveal := strconv.FormatInt(RevealDuration.Milliseconds(), 10) + "ms"
	fmt.Fprintf(&b, "[data-reveal] { opacity: 0; transform: translateY(30px); transition: opacity %s ease-out, transform %s ease-out; }\n", reveal, reveal)
	b.WriteString("[data-reveal].is-revealed { opacity: 1; transform: none; }\n")
	b.WriteString("@media (prefers-reduced-motion: reduce) { [data-reveal] { opacity: 1; transform: none; transition: none; } }\n\n")

	b.WriteString(baseCSS)
	return b.String()
}

func (a Animation) shorthand(name string) string {
	kf := a.Keyframes
	if kf == "" {
		kf = name
	}
	parts := []string{kf, formatSeconds(a.Duration)}
	if a.Timing != "" {
		parts = append(parts, a.Timing)
	}
	if a.Infinite {
		parts = append(parts, "infinite")
	}
	return strings.Join(parts, " ")
}

func formatSeconds(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d%time.Second == 0 {
		return strconv.FormatInt(int64(d/time.Second), 10) + "s"
	}
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

func fontStack(fonts []string) string {
	quoted := make([]string, 0, len(fonts))
	for _, f := range fonts {
		if strings.ContainsRune(f, ' ') {
			f = strconv.Quote(f)
		}
		quoted = append(quoted, f)
	}
	return strings.Join(quoted, ", ")
}
