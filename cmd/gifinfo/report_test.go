package main

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/gif-demux/gif"
)

func testDocument() *gif.Document {
	doc := &gif.Document{
		Version:          gif.Version89,
		Screen:           gif.ScreenDescriptor{Width: 10, Height: 20},
		GlobalColorTable: gif.ColorTable{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}},
		Comments:         []string{"hello"},
		Terminated:       true,
	}
	for i := 0; i < 20; i++ {
		doc.Frames = append(doc.Frames, gif.Frame{
			Control:    &gif.GraphicControl{DisposalMethod: gif.DisposalBackground, Delay: 10},
			Descriptor: gif.ImageDescriptor{Width: 10, Height: 20},
			Image:      gif.ImageData{LZWMinCodeSize: 2, Data: []byte{byte(i)}},
		})
	}
	return doc
}

func TestFrameSummary(t *testing.T) {
	doc := testDocument()
	f := gif.Frame{
		Control:         &gif.GraphicControl{DisposalMethod: gif.DisposalPrevious, Transparent: true, TransparentIndex: 4, Delay: 25, UserInput: true},
		Descriptor:      gif.ImageDescriptor{Left: 1, Top: 2, Width: 3, Height: 4, Interlaced: true},
		LocalColorTable: gif.ColorTable{{}, {}, {}, {}},
		Image:           gif.ImageData{LZWMinCodeSize: 8, Data: make([]byte, 17)},
	}

	got := frameSummary(3, &f, doc)
	want := "#3 3x4+1+2 lzw=8 data=17B palette=local(4) interlaced delay=250ms dispose=previous transparent=4 user-input"
	if got != want {
		t.Errorf("frameSummary =\n  %q\nwant\n  %q", got, want)
	}

	got = frameSummary(0, &doc.Frames[0], doc)
	if !strings.Contains(got, "palette=global(2)") || !strings.Contains(got, "dispose=background") {
		t.Errorf("frameSummary = %q", got)
	}

	got = frameSummary(0, &gif.Frame{}, &gif.Document{})
	if !strings.HasSuffix(got, "palette=none") {
		t.Errorf("frameSummary = %q", got)
	}
}

func TestDisposalName(t *testing.T) {
	tests := map[uint8]string{
		gif.DisposalUnspecified: "unspecified",
		gif.DisposalNone:        "none",
		gif.DisposalBackground:  "background",
		gif.DisposalPrevious:    "previous",
		5:                       "reserved(5)",
	}
	for m, want := range tests {
		if got := disposalName(m); got != want {
			t.Errorf("disposalName(%d) = %q, want %q", m, got, want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	doc := testDocument()
	doc.Terminated = false
	doc.Diagnostics = []gif.Diagnostic{{Offset: 99, Block: gif.Block{Kind: gif.BlockUnknownByte, Value: 0x42}}}
	apps := []gif.Application{{Identifier: "NETSCAPE", AuthCode: "2.0", Data: []byte{1, 0, 0}}}

	var buf bytes.Buffer
	writeReport(&buf, "anim.gif", doc, apps, plainStyles())
	out := buf.String()

	for _, want := range []string{
		"GIF89a anim.gif",
		"Screen:          10x20",
		"Frames:          20",
		"Duration:        2s",
		"#19 10x20+0+0",
		"NETSCAPE2.0 (3 bytes)",
		`"hello"`,
		"offset 99: unknown byte 0x42",
		"No trailer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestParseCollectsApplications(t *testing.T) {
	doc := &gif.Document{Screen: gif.ScreenDescriptor{Width: 1, Height: 1}}
	data := doc.Encode()
	netscape := append([]byte{0x21, 0xFF, 0x0B}, "NETSCAPE2.0\x03\x01\x00\x00\x00"...)
	data = append(append(data[:len(data)-1:len(data)-1], netscape...), gif.IntroTrailer)

	var forwarded int
	_, apps, err := parse(data, gif.Options{OnApplication: func(gif.Application) { forwarded++ }})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(apps) != 1 || apps[0].Identifier != "NETSCAPE" {
		t.Errorf("apps = %+v", apps)
	}
	if forwarded != 1 {
		t.Errorf("caller callback ran %d times", forwarded)
	}

	if _, _, err := parse([]byte("nope"), gif.Options{}); err == nil {
		t.Error("expected error for non-GIF input")
	}
}

func TestInteractiveNavigation(t *testing.T) {
	m := newInteractiveModel("anim.gif", gif.Options{})
	m.Update(loadedMsg{doc: testDocument()})

	key := func(s string) {
		var msg tea.KeyMsg
		switch s {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "end":
			msg = tea.KeyMsg{Type: tea.KeyEnd}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
		}
		m.Update(msg)
	}

	key("up")
	if m.selected != 0 {
		t.Errorf("selected = %d after up at top", m.selected)
	}
	key("down")
	key("down")
	if m.selected != 2 {
		t.Errorf("selected = %d, want 2", m.selected)
	}

	key("end")
	if m.selected != 19 || m.offset != 19-visibleFrames+1 {
		t.Errorf("selected=%d offset=%d", m.selected, m.offset)
	}

	key("g")
	if m.state != stateJump {
		t.Fatalf("state = %v, want jump", m.state)
	}
	key("4")
	key("enter")
	if m.state != stateBrowse || m.selected != 4 || m.offset != 4 {
		t.Errorf("state=%v selected=%d offset=%d", m.state, m.selected, m.offset)
	}

	key("g")
	key("9")
	key("esc")
	if m.selected != 4 {
		t.Errorf("esc should cancel the jump, selected = %d", m.selected)
	}

	if view := m.View(); !strings.Contains(view, "#4 10x20+0+0") {
		t.Errorf("view missing selected frame:\n%s", view)
	}
}

func TestInteractiveLoadError(t *testing.T) {
	m := newInteractiveModel("missing.gif", gif.Options{})
	msg := m.load()
	m.Update(msg)
	if m.err == nil || !strings.Contains(m.View(), "Error") {
		t.Errorf("expected load error, got %v", m.err)
	}
}
