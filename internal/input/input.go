// Package input reads raw terminal bytes into per-frame key state.
//
// Terminals only deliver key presses, never releases. A key counts as held
// while its byte keeps repeating within the hold window; once the repeats
// stop the key reads as released, which is what re-arms the movement
// debounce latches upstream.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Start  bool // Space or Enter
	Pause  bool
	Quit   bool
	Escape bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	up     time.Time
	down   time.Time
	left   time.Time
	right  time.Time
	start  time.Time
	pause  time.Time
	quit   time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state so held
// keys and key combinations can be detected across frames.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
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

// ReadInput drains all available bytes from the stream (non-blocking),
// parses escape sequences for arrow keys, and reports every key seen
// within the hold window as pressed.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader hit EOF; the session is over
				s.closed = true
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> (arrow keys)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Up:     now.Sub(s.state.up) < keyHoldDuration,
		Down:   now.Sub(s.state.down) < keyHoldDuration,
		Left:   now.Sub(s.state.left) < keyHoldDuration,
		Right:  now.Sub(s.state.right) < keyHoldDuration,
		Start:  now.Sub(s.state.start) < keyHoldDuration,
		Pause:  now.Sub(s.state.pause) < keyHoldDuration,
		Quit:   now.Sub(s.state.quit) < keyHoldDuration,
		Escape: now.Sub(s.state.escape) < keyHoldDuration,
	}
}

// Closed reports whether the underlying reader has hit EOF.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset clears all key state, e.g. when transitioning between screens so a
// held key does not leak into the next state.
func Reset(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ', '\n', '\r':
		state.start = now
	case 'p', 'P':
		state.pause = now
	case 'q', 'Q':
		state.quit = now
	case '\x1b':
		state.escape = now
	}
}
