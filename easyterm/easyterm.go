// This file is part of Gopher7800.
//
// Gopher7800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher7800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher7800.  If not, see <https://www.gnu.org/licenses/>.

//go:build !windows

package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry is the size of the terminal.
type TermGeometry struct {
	// characters
	rows uint16
	cols uint16

	// pixels
	x uint16
	y uint16
}

// Rows returns the number of character rows in the terminal.
func (g TermGeometry) Rows() int {
	return int(g.rows)
}

// Cols returns the number of character columns in the terminal.
func (g TermGeometry) Cols() int {
	return int(g.cols)
}

// Terminal is a thin wrapper around the termios functions of the pkg/term
// package.
type Terminal struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// public functions that are called from the signal handler are prefaced
	// with:
	//		pt.mu.Lock()
	//		defer pt.mu.Unlock()
	mu sync.Mutex
}

// Initialise the terminal with the input and output files. Usually os.Stdin
// and os.Stdout.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return pt.UpdateGeometry()
}

// CleanUp restores the terminal to canonical mode and stops the signal
// handler.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// Print a formatted string to the terminal output.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	_, _ = pt.output.WriteString(fmt.Sprintf(s, a...))
}

// UpdateGeometry reads the current size of the terminal.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: error updating terminal geometry information: %w", err)
	}
	pt.Geometry = TermGeometry{
		rows: ws.Row,
		cols: ws.Col,
		x:    ws.Xpixel,
		y:    ws.Ypixel,
	}
	return nil
}

// CanonicalMode puts the terminal into line-buffered mode with echo.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// RawMode puts the terminal into raw mode. Signals are not generated by
// control keys.
func (pt *Terminal) RawMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}

// CBreakMode puts the terminal into cbreak mode. Keys are available
// immediately but control keys still generate signals.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush discards any pending input and output.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}

// ReadKey blocks until a key is pressed. Cursor keys are returned as the
// Cursor* values. Should be used in cbreak or raw mode.
func (pt *Terminal) ReadKey() (rune, error) {
	var b [1]byte

	if _, err := pt.input.Read(b[:]); err != nil {
		return 0, err
	}

	if b[0] != KeyEsc {
		return rune(b[0]), nil
	}

	// escape sequences
	if _, err := pt.input.Read(b[:]); err != nil {
		return 0, err
	}
	if b[0] != EscCursor {
		return KeyEsc, nil
	}
	if _, err := pt.input.Read(b[:]); err != nil {
		return 0, err
	}
	switch b[0] {
	case CursorUp, CursorDown, CursorForward, CursorBackward:
		return cursorKey + rune(b[0]), nil
	}
	return KeyEsc, nil
}
