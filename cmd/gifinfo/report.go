package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/gif-demux/gif"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// styles renders report text. The plain set leaves text untouched.
type styles struct {
	title, label, value, warn lipgloss.Style
	plain                     bool
}

func plainStyles() styles {
	return styles{plain: true}
}

func colorStyles() styles {
	return styles{
		title: titleStyle,
		label: labelStyle,
		value: valueStyle,
		warn:  warnStyle,
	}
}

func (st styles) render(s lipgloss.Style, text string) string {
	if st.plain {
		return text
	}
	return s.Render(text)
}

func writeReport(w io.Writer, name string, doc *gif.Document, apps []gif.Application, st styles) {
	fmt.Fprintf(w, "%s %s\n\n", st.render(st.title, "GIF"+doc.Version), name)

	sd := doc.Screen
	field := func(label string, value any) {
		fmt.Fprintf(w, "%s %s\n", st.render(st.label, fmt.Sprintf("%-16s", label+":")), st.render(st.value, fmt.Sprint(value)))
	}
	field("Screen", fmt.Sprintf("%dx%d", sd.Width, sd.Height))
	field("Global colors", sd.ColorCount)
	field("Background", sd.BackgroundIndex)
	field("Frames", len(doc.Frames))
	if d := totalDelay(doc); d > 0 {
		field("Duration", d)
	}

	if len(doc.Frames) > 0 {
		fmt.Fprintln(w)
		for i := range doc.Frames {
			fmt.Fprintln(w, "  "+frameSummary(i, &doc.Frames[i], doc))
		}
	}

	if len(apps) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.render(st.label, "Applications:"))
		for _, app := range apps {
			fmt.Fprintf(w, "  %s%s (%d bytes)\n", app.Identifier, app.AuthCode, len(app.Data))
		}
	}
	if len(doc.Comments) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.render(st.label, "Comments:"))
		for _, c := range doc.Comments {
			fmt.Fprintf(w, "  %q\n", c)
		}
	}
	if len(doc.PlainTexts) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.render(st.label, "Plain text:"))
		for _, pt := range doc.PlainTexts {
			fmt.Fprintf(w, "  %dx%d+%d+%d %q\n", pt.GridWidth, pt.GridHeight, pt.Left, pt.Top, pt.Text)
		}
	}

	if len(doc.Diagnostics) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.render(st.warn, fmt.Sprintf("Skipped %d byte(s):", len(doc.Diagnostics))))
		for _, d := range doc.Diagnostics {
			fmt.Fprintf(w, "  offset %d: %s\n", d.Offset, d.Block)
		}
	}
	if !doc.Terminated {
		fmt.Fprintf(w, "\n%s\n", st.render(st.warn, "No trailer: file ended between blocks."))
	}
}

// frameSummary formats one frame as a single line.
func frameSummary(i int, f *gif.Frame, doc *gif.Document) string {
	d := f.Descriptor
	parts := []string{
		fmt.Sprintf("#%d", i),
		fmt.Sprintf("%dx%d+%d+%d", d.Width, d.Height, d.Left, d.Top),
		fmt.Sprintf("lzw=%d", f.Image.LZWMinCodeSize),
		fmt.Sprintf("data=%dB", len(f.Image.Data)),
	}

	switch {
	case f.LocalColorTable != nil:
		parts = append(parts, fmt.Sprintf("palette=local(%d)", len(f.LocalColorTable)))
	case doc.GlobalColorTable != nil:
		parts = append(parts, fmt.Sprintf("palette=global(%d)", len(doc.GlobalColorTable)))
	default:
		parts = append(parts, "palette=none")
	}
	if d.Interlaced {
		parts = append(parts, "interlaced")
	}

	if gc := f.Control; gc != nil {
		parts = append(parts,
			fmt.Sprintf("delay=%s", gc.DelayDuration()),
			fmt.Sprintf("dispose=%s", disposalName(gc.DisposalMethod)))
		if gc.Transparent {
			parts = append(parts, fmt.Sprintf("transparent=%d", gc.TransparentIndex))
		}
		if gc.UserInput {
			parts = append(parts, "user-input")
		}
	}
	return strings.Join(parts, " ")
}

func disposalName(m uint8) string {
	switch m {
	case gif.DisposalUnspecified:
		return "unspecified"
	case gif.DisposalNone:
		return "none"
	case gif.DisposalBackground:
		return "background"
	case gif.DisposalPrevious:
		return "previous"
	default:
		return fmt.Sprintf("reserved(%d)", m)
	}
}

// totalDelay sums the frame delays of the animation.
func totalDelay(doc *gif.Document) time.Duration {
	var total time.Duration
	for _, f := range doc.Frames {
		if f.Control != nil {
			total += f.Control.DelayDuration()
		}
	}
	return total
}
