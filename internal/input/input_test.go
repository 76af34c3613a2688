package input

import (
	"bufio"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		in   string
		want Input
	}{
		{"q", Input{Quit: true, Pressed: []byte("q")}},
		{"\x03", Input{Quit: true, Pressed: []byte("\x03")}},
		{"R", Input{Restart: true, Pressed: []byte("R")}},
		{" \r", Input{Space: true, Enter: true, Pressed: []byte(" \r")}},
		{"x", Input{Pressed: []byte("x")}},
		{"\x1b[Aq", Input{Quit: true, Pressed: []byte("q")}},
	}
	for _, tt := range tests {
		got, rest := Parse([]byte(tt.in))
		if len(rest) != 0 {
			t.Errorf("Parse(%q) left %q", tt.in, rest)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseMouse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Click
	}{
		{"left press", "\x1b[<0;12;7M", []Click{{12, 7}}},
		{"release ignored", "\x1b[<0;12;7m", nil},
		{"right button ignored", "\x1b[<2;12;7M", nil},
		{"wheel ignored", "\x1b[<64;12;7M", nil},
		{"motion ignored", "\x1b[<32;12;7M", nil},
		{"two clicks in order", "\x1b[<0;1;2M\x1b[<0;3;4M", []Click{{1, 2}, {3, 4}}},
		{"click between keys", "a\x1b[<0;100;40Mb", []Click{{100, 40}}},
		{"malformed", "\x1b[<0;x;4M", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest := Parse([]byte(tt.in))
			if len(rest) != 0 {
				t.Errorf("unexpected rest %q", rest)
			}
			if !reflect.DeepEqual(got.Clicks, tt.want) {
				t.Errorf("clicks = %v, want %v", got.Clicks, tt.want)
			}
		})
	}
}

func TestParseMouseDoesNotLeakKeys(t *testing.T) {
	// Coordinates must not be read as key presses.
	got, _ := Parse([]byte("\x1b[<0;13;1M"))
	if got.Quit || got.Restart || len(got.Pressed) != 0 {
		t.Errorf("mouse report produced keys: %+v", got)
	}
}

func TestParsePartialSequence(t *testing.T) {
	for _, partial := range []string{"\x1b", "\x1b[", "\x1b[<", "\x1b[<0;12", "\x1b[<0;12;7"} {
		in, rest := Parse([]byte("r" + partial))
		if !in.Restart {
			t.Errorf("%q: key before partial sequence lost", partial)
		}
		if string(rest) != partial {
			t.Errorf("%q: rest = %q", partial, rest)
		}
	}
}

func TestReadInputCompletesSequenceAcrossReads(t *testing.T) {
	pr, pw := io.Pipe()
	s := StartStream(bufio.NewReader(pr))

	go pw.Write([]byte("\x1b[<0;5"))
	waitFor(t, s, func() bool { return len(s.pending) > 0 })

	go pw.Write([]byte(";9M"))
	var got Input
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		got = ReadInput(s)
		if len(got.Clicks) > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !reflect.DeepEqual(got.Clicks, []Click{{5, 9}}) {
		t.Errorf("clicks = %v, want [{5 9}]", got.Clicks)
	}
	pw.Close()
}

func TestReadInputQuitsOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Quit {
			if !s.Closed() {
				t.Error("stream should report closed")
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("closed input never produced Quit")
}

// waitFor polls ReadInput until cond holds.
func waitFor(t *testing.T, s *Stream, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		ReadInput(s)
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met")
}
