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

package hardware

// While the continueCheck() function is only called once per frame, it can
// still be useful to perform expensive checks less often.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// RunForFrameCount runs the emulation for the specified number of frames. A
// frame count of zero or less runs the emulation until continueCheck()
// returns false or the machine halts.
//
// The continueCheck() function is called before every frame with the number
// of the frame about to be computed. It can be nil.
func (m *Machine7800) RunForFrameCount(numFrames int, continueCheck func(frame int64) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int64) (bool, error) { return true, nil }
	}

	targetFrame := m.frameNumber + int64(numFrames)

	for numFrames <= 0 || m.frameNumber < targetFrame {
		if m.halt {
			return nil
		}

		cont, err := continueCheck(m.frameNumber + 1)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		m.ComputeNextFrame()
	}

	return nil
}
