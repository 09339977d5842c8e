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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher7800/hardware"
)

// Leadtime is the period the emulation runs for before the measurement
// starts. It allows the frame rate to settle down.
var Leadtime = 2 * time.Second

// Check the performance of the emulator. The machine will run uncapped for
// the specified duration and will create the profiles defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine7800, duration time.Duration) error {
	// the timer channel signals false when the leadtime has elapsed and true
	// when the measurement period has elapsed
	timerChan := make(chan bool, 2)
	time.AfterFunc(Leadtime, func() {
		timerChan <- false
		time.AfterFunc(duration, func() {
			timerChan <- true
		})
	})

	startFrame := m.FrameNumber()

	var performanceBrake int
	var timedOut bool

	runner := func() error {
		return m.RunForFrameCount(0, func(frame int64) (bool, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return true, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					timedOut = true
					return false, nil
				}
				startFrame = frame - 1
			default:
			}
			return true, nil
		})
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	if !timedOut {
		return fmt.Errorf("performance: machine halted before the measurement period ended")
	}

	numFrames := int(m.FrameNumber() - startFrame)
	fps, accuracy := CalcFPS(m.FrameHZ(), numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return nil
}
