// Package input reads keyboard and mouse input from a raw terminal stream.
package input

import (
	"bufio"
)

// maxPending bounds how many bytes of an unfinished escape sequence are
// carried over to the next frame.
const maxPending = 32

// Click is a left mouse button press at a 1-based terminal cell.
type Click struct {
	Col, Row int
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Restart bool
	Space   bool
	Enter   bool
	Clicks  []Click // In arrival order
	Pressed []byte  // Plain key bytes, escape sequences excluded
}

// Stream delivers input bytes via a channel and keeps partial escape
// sequences between reads.
type Stream struct {
	ch      chan byte
	pending []byte
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has hit EOF or an error.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// parses them. A sequence cut off at the end of the available bytes is
// completed on a later call.
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in, rest := Parse(buf)
	if len(rest) > 0 && len(rest) <= maxPending && !s.closed {
		s.pending = append([]byte(nil), rest...)
	}
	if s.closed {
		in.Quit = true
	}
	return in
}

// Parse decodes keys and SGR mouse reports from buf. rest holds a trailing
// escape sequence that is not complete yet.
func Parse(buf []byte) (in Input, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			applyByte(&in, b)
			continue
		}

		// ESC alone at the end may be the start of a sequence.
		if i+1 >= len(buf) {
			return in, buf[i:]
		}
		if buf[i+1] != '[' {
			continue
		}
		if i+2 >= len(buf) {
			return in, buf[i:]
		}

		if buf[i+2] == '<' {
			click, n, ok := parseSGRMouse(buf[i+3:])
			if n < 0 {
				return in, buf[i:]
			}
			if ok {
				in.Clicks = append(in.Clicks, click)
			}
			i += 2 + n
			continue
		}

		// Skip any other CSI sequence (arrow keys and the like).
		j := i + 2
		for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
			j++
		}
		if j >= len(buf) {
			return in, buf[i:]
		}
		i = j
	}
	return in, nil
}

// parseSGRMouse decodes "b;col;row" followed by M (press) or m (release).
// n is the number of bytes consumed including the terminator, or -1 if the
// sequence is incomplete. ok is set only for a left button press.
func parseSGRMouse(buf []byte) (c Click, n int, ok bool) {
	var fields [3]int
	field := 0
	for i, b := range buf {
		switch {
		case b >= '0' && b <= '9':
			fields[field] = fields[field]*10 + int(b-'0')
		case b == ';':
			field++
			if field > 2 {
				return Click{}, i + 1, false
			}
		case b == 'M' || b == 'm':
			button := fields[0]
			// Low bits pick the button; 32 flags motion, 64 the wheel.
			left := button&3 == 0 && button&(32|64) == 0
			if b == 'M' && left && field == 2 {
				return Click{Col: fields[1], Row: fields[2]}, i + 1, true
			}
			return Click{}, i + 1, false
		default:
			return Click{}, i + 1, false
		}
	}
	return Click{}, -1, false
}

// applyByte records a single key byte.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'r', 'R':
		in.Restart = true
	case ' ':
		in.Space = true
	case '\n', '\r':
		in.Enter = true
	}
	in.Pressed = append(in.Pressed, b)
}
