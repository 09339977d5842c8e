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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher7800/cartridgeloader"
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/digest"
	"github.com/jetsetilly/gopher7800/environment"
	"github.com/jetsetilly/gopher7800/hardware"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/preferences"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/macro"
	"github.com/jetsetilly/gopher7800/modalflag"
	"github.com/jetsetilly/gopher7800/performance"
	"github.com/jetsetilly/gopher7800/performance/limiter"
	"github.com/jetsetilly/gopher7800/playback"
	"github.com/jetsetilly/gopher7800/prefs"
	"github.com/jetsetilly/gopher7800/recorder"
	"github.com/jetsetilly/gopher7800/rewind"
	"github.com/jetsetilly/gopher7800/statsview"
	"github.com/jetsetilly/gopher7800/userinput"
	"github.com/jetsetilly/gopher7800/version"
	"github.com/jetsetilly/gopher7800/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest

	// set by the main thread on the first interrupt signal. the emulation
	// loop checks this every frame and ends cleanly
	interrupted atomic.Bool
}

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			// the second interrupt ends the program immediately
			if sync.interrupted.Load() {
				fmt.Println("\r")
				done = true
			}
			sync.interrupted.Store(true)

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "INFO", "STATE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "INFO":
		err = info(md)

	case "STATE":
		err = state(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// newEnvironment creates the environment for the main emulation with the
// preferences on disk. Preferences on the command line take precedence.
func newEnvironment(cmdline string) (*environment.Environment, error) {
	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
	}
	hp, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}
	if cmdline != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopher7800", "unused preferences: %s", unused)
		}
	}
	return environment.NewEnvironment(environment.MainEmulation, nil, hp), nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	mf := addMachineFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until the machine halts or is interrupted")
	fpsCap := md.AddBool("fpscap", true, "limit the frame rate to the television standard")
	audio := md.AddBool("audio", true, "play sound through the audio device")
	wav := md.AddString("wav", "", "write sound to WAV file")
	interactiveInput := md.AddBool("interactive", false, "controller and console input from the keyboard")
	macroFile := md.AddString("macro", "", "lua script to drive the controllers")
	record := md.AddString("record", "", "record input to transcript file")
	playbackFile := md.AddString("playback", "", "playback input from transcript file")
	showDigest := md.AddBool("digest", false, "print digest of the sound and the machine state on exit")
	useRewind := md.AddBool("rewind", false, "keep snapshots for rewinding. '[' in interactive mode goes back one second")
	saveState := md.AddString("savestate", "", "write machine state to file on exit")
	loadState := md.AddString("loadstate", "", "start from the machine state in file instead of a cartridge")
	memvizFile := md.AddString("memviz", "", "write graphviz description of the MARIA and PIA state to file on exit")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run. eg. \"hardware.randstate::true\"")
	echoLog := md.AddBool("log", false, "echo log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *echoLog {
		logger.SetEcho(md.Output, true)
		defer logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	env, err := newEnvironment(*cmdlinePrefs)
	if err != nil {
		return err
	}

	var m *hardware.Machine7800
	var cl cartridgeloader.Loader

	if *loadState != "" {
		if len(md.RemainingArgs()) > 0 {
			return curated.Errorf("cartridge and -loadstate can not be used together")
		}
		data, err := os.ReadFile(*loadState)
		if err != nil {
			return err
		}
		m, err = hardware.FromSnapshot(data, env)
		if err != nil {
			return err
		}
		cl = cartridgeloader.Loader{Filename: *loadState}
	} else {
		switch len(md.RemainingArgs()) {
		case 0:
			return curated.Errorf("7800 cartridge required for %s mode", md)
		case 1:
		default:
			return curated.Errorf("too many arguments for %s mode", md)
		}
		m, cl, err = mf.create(env, md.GetArg(0))
		if err != nil {
			return err
		}
	}

	// input
	var source input.EventPlayback

	var it *interactive
	if *interactiveInput {
		kb := userinput.NewKeyboard()
		it, err = startInteractive(kb)
		if err != nil {
			return err
		}
		defer it.cleanUp()
		source = kb
	}

	var mcr *macro.Macro
	if *macroFile != "" {
		if source != nil {
			return curated.Errorf("a macro can not be used with interactive input")
		}
		mcr, err = macro.NewMacroFromFile(*macroFile)
		if err != nil {
			return err
		}
		defer mcr.Close()
		source = mcr
	}

	var rec *recorder.Recorder
	var plb *recorder.Playback

	switch {
	case *playbackFile != "":
		if source != nil || *record != "" {
			return curated.Errorf("playback can not be used with any other input")
		}
		plb, err = recorder.NewPlayback(*playbackFile)
		if err != nil {
			return err
		}
		if cl.Hash != "" && plb.CartHash != cl.Hash {
			logger.Logf(logger.Allow, "gopher7800", "recording was made with a different cartridge (%s)", plb.CartName)
		}
		if err := plb.AttachToMachine(m); err != nil {
			return err
		}
	case *record != "":
		rec, err = recorder.NewRecorder(*record, m, cl, source)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.End(); err != nil {
				logger.Log(logger.Allow, "gopher7800", err.Error())
			}
		}()
	case source != nil:
		m.Input.AttachPlayback(source)
	}

	// output
	var player *playback.Player
	if *audio {
		player, err = playback.NewPlayer(m.SoundSampleFrequency())
		if err != nil {
			logger.Logf(logger.Allow, "gopher7800", "no audio: %v", err)
			player = nil
		} else {
			defer func() {
				if err := player.Close(); err != nil {
					logger.Log(logger.Allow, "gopher7800", err.Error())
				}
			}()
		}
	}

	var ww *wavwriter.WavWriter
	if *wav != "" {
		ww, err = wavwriter.New(*wav, m.SoundSampleFrequency())
		if err != nil {
			return err
		}
		defer func() {
			if err := ww.Close(); err != nil {
				logger.Log(logger.Allow, "gopher7800", err.Error())
			}
		}()
	}

	var dig *digest.Audio
	if *showDigest {
		dig = digest.NewAudio()
	}

	var rw *rewind.Rewind
	if *useRewind {
		rp, err := rewind.NewPreferences()
		if err != nil {
			return err
		}
		rw = rewind.NewRewind(rp)
	}

	var lim *limiter.FpsLimiter
	if *fpsCap {
		lim = limiter.NewFPSLimiter(m.FrameHZ())
		defer lim.Stop()
	}

	var commands chan rune
	if it != nil {
		commands = it.commands
	}

	logger.Logf(logger.Allow, "gopher7800", "running %s", m.Describe())

	for n := 0; *frames <= 0 || n < *frames; n++ {
		if m.MachineHalt() || sync.interrupted.Load() {
			break // for loop
		}
		if plb != nil && plb.EndFrame() {
			break // for loop
		}
		if mcr != nil && mcr.Halted() {
			break // for loop
		}

		quit := false
		select {
		case r := <-commands:
			switch r {
			case 'q', 'Q':
				quit = true
			case '[':
				if rw == nil || rec != nil || plb != nil {
					break // switch
				}
				nm, err := rw.GotoFrame(m.FrameNumber()-int64(m.FrameHZ()), m)
				if err != nil {
					logger.Log(logger.Allow, "gopher7800", err.Error())
					break // switch
				}
				m = nm
			}
		default:
		}
		if quit {
			break // for loop
		}

		m.ComputeNextFrame()

		samples := m.SoundBuffer()
		if player != nil {
			player.AddFrame(samples)
		}
		if ww != nil {
			if err := ww.AddFrame(samples); err != nil {
				return err
			}
		}
		if dig != nil {
			dig.AddFrame(samples)
		}
		if rw != nil {
			if err := rw.RecordFrame(m); err != nil {
				return err
			}
		}
		if lim != nil {
			lim.Wait()
		}
	}

	if err := m.Flush(); err != nil {
		logger.Log(logger.Allow, "gopher7800", err.Error())
	}

	if m.MachineHalt() {
		fmt.Fprintf(md.Output, "machine halted: %s\n", m.Describe())
	}

	if dig != nil {
		fmt.Fprintf(md.Output, "audio: %s\n", dig)
		fmt.Fprintf(md.Output, "state: %s\n", digest.State(m))
	}

	if rw != nil {
		fmt.Fprintln(md.Output, rw)
	}

	if *saveState != "" {
		data, err := m.Snapshot()
		if err != nil {
			return err
		}
		if err := os.WriteFile(*saveState, data, 0o644); err != nil {
			return curated.Errorf("savestate: %v", err)
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		memviz.Map(f, m.Maria, m.PIA)
		if err := f.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "produce profiling reports. comma separated list of cpu, mem, trace or all")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("7800 cartridge required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	env, err := newEnvironment(*cmdlinePrefs)
	if err != nil {
		return err
	}

	m, _, err := mf.create(env, md.GetArg(0))
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, *duration)
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	mapping := md.AddString("mapping", auto, "force use of cartridge mapping")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf("at least one file required for %s mode", md)
	}

	for _, f := range md.RemainingArgs() {
		cl := cartridgeloader.NewLoader(f, *mapping)
		if err := cl.Load(); err != nil {
			return err
		}
		fmt.Fprint(md.Output, describeLoader(cl))
		if cl.Special() == cartridgeloader.NotSpecial {
			if cart, err := cl.Cart(); err != nil {
				fmt.Fprintf(md.Output, "cart: %v\n", err)
			} else {
				fmt.Fprintf(md.Output, "cart: %s\n", cart)
			}
		}
	}

	return nil
}

func state(md *modalflag.Modes) error {
	md.NewMode()
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("savestate file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	m, err := hardware.FromSnapshot(data, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, m.Describe())
	fmt.Fprintf(md.Output, "state: %s\n", digest.State(m))

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	deps := md.AddBool("deps", false, "list the modules used to build the program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	fmt.Fprintf(md.Output, "built with %s\n", version.GoVersion())
	if *deps {
		fmt.Fprint(md.Output, version.Dependencies())
	}

	return nil
}
