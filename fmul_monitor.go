// fmul_monitor.go - interactive machine monitor for single-stepping the multiplier

/*
███████╗███╗   ███╗██╗   ██╗██╗     ██████╗ ██████╗
██╔════╝████╗ ████║██║   ██║██║     ╚════██╗╚════██╗
█████╗  ██╔████╔██║██║   ██║██║      █████╔╝ █████╔╝
██╔══╝  ██║╚██╔╝██║██║   ██║██║      ╚═══██╗██╔═══╝
██║     ██║ ╚═╝ ██║╚██████╔╝███████╗██████╔╝███████╗
╚═╝     ╚═╝     ╚═╝ ╚═════╝ ╚══════╝╚═════╝ ╚══════╝

(c) 2025 - 2026 Daniel Arthur
https://github.com/danielarthurstp/multiply-fp32
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Monitor is an interactive front end over one FMul32 instance. It owns
// the pending start request so that operand capture happens on a ticked
// stage boundary, exactly as an external hardware driver would do it.
type Monitor struct {
	mul *FMul32

	pendingStart bool
	pendA, pendB uint32

	lastDone bool
}

// NewMonitor creates a monitor over the given multiplier.
func NewMonitor(mul *FMul32) *Monitor {
	return &Monitor{mul: mul}
}

// Run takes the terminal into raw mode and serves the command loop until
// quit or EOF. Restores the terminal state on exit.
func (mon *Monitor) Run() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("monitor: stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("monitor: failed to set raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := term.NewTerminal(screen, "fmul> ")

	fmt.Fprintln(t, "machine monitor - 'help' lists commands")
	for {
		line, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		out, quit := mon.Execute(line)
		if out != "" {
			fmt.Fprintln(t, out)
		}
		if quit {
			return nil
		}
	}
}

// Execute dispatches one command line and returns the output text plus
// whether the monitor should exit. Split out from Run so the dispatch
// logic is testable without a terminal.
func (mon *Monitor) Execute(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "help", "?":
		return monitorHelp, false

	case "start", "s":
		if len(fields) != 3 {
			return "usage: start <a> <b>", false
		}
		a, errA := parseBits(fields[1])
		b, errB := parseBits(fields[2])
		if errA != nil || errB != nil {
			return "start: bad operand bits", false
		}
		mon.pendingStart = true
		mon.pendA, mon.pendB = a, b
		return fmt.Sprintf("start pending: a=0x%08X b=0x%08X (tick to accept)", a, b), false

	case "tick", "t":
		n := 1
		if len(fields) == 2 {
			v, err := strconv.Atoi(fields[1])
			if err != nil || v < 1 {
				return "tick: bad count", false
			}
			n = v
		}
		var out strings.Builder
		for i := 0; i < n; i++ {
			out.WriteString(mon.tickOnce())
			if i != n-1 {
				out.WriteByte('\n')
			}
		}
		return out.String(), false

	case "run":
		// Tick until completion or an idle bound; a stuck FSM cannot
		// happen, the bound just keeps a no-start run finite.
		for i := 0; i < MUL_LATENCY+1; i++ {
			msg := mon.tickOnce()
			if mon.lastDone {
				return msg, false
			}
		}
		return "run: idle (nothing in flight)", false

	case "mul", "m":
		if len(fields) != 3 {
			return "usage: mul <a> <b>", false
		}
		a, errA := parseBits(fields[1])
		b, errB := parseBits(fields[2])
		if errA != nil || errB != nil {
			return "mul: bad operand bits", false
		}
		z := mon.mul.Multiply(a, b)
		return fmt.Sprintf("0x%08X * 0x%08X = 0x%08X  (%s * %s = %s)",
			a, b, z, formatFloat32(a), formatFloat32(b), formatFloat32(z)), false

	case "classify", "c":
		if len(fields) != 2 {
			return "usage: classify <bits>", false
		}
		bits, err := parseBits(fields[1])
		if err != nil {
			return "classify: bad bits", false
		}
		return describeBits(bits), false

	case "regs", "r":
		return mon.dumpRegs(), false

	case "reset":
		mon.mul.Reset()
		mon.pendingStart = false
		mon.lastDone = false
		return "reset: controller idle", false

	case "quit", "q", "exit":
		return "bye", true
	}

	return fmt.Sprintf("unknown command %q - 'help' lists commands", fields[0]), false
}

func (mon *Monitor) tickOnce() string {
	start := mon.pendingStart
	mon.pendingStart = false
	busy, done, z := mon.mul.Tick(start, mon.pendA, mon.pendB)
	mon.lastDone = done
	msg := fmt.Sprintf("tick %d: stage=%s busy=%v completed=%v",
		mon.mul.Cycles(), mon.mul.Stage(), busy, done)
	if done {
		msg += fmt.Sprintf(" result=0x%08X (%s)", z, formatFloat32(z))
	}
	return msg
}

func (mon *Monitor) dumpRegs() string {
	m := mon.mul
	var b strings.Builder
	fmt.Fprintf(&b, "stage    %-14s cycles %d\n", m.stage, m.cycles)
	fmt.Fprintf(&b, "a        0x%08X %-9s mant=0x%06X exp=%d neg=%v\n",
		m.rawA, m.clsA, m.opA.Mant, m.opA.Exp, m.opA.Neg)
	fmt.Fprintf(&b, "b        0x%08X %-9s mant=0x%06X exp=%d neg=%v\n",
		m.rawB, m.clsB, m.opB.Mant, m.opB.Exp, m.opB.Neg)
	fmt.Fprintf(&b, "special  %v bits=0x%08X\n", m.special, m.specialBits)
	fmt.Fprintf(&b, "product  0x%013X\n", m.product)
	fmt.Fprintf(&b, "cand     mant=0x%06X exp=%d neg=%v g=%v r=%v s=%v\n",
		m.cand.mant, m.cand.exp, m.cand.neg, m.cand.guard, m.cand.round, m.cand.sticky)
	fmt.Fprintf(&b, "result   0x%08X (%s)", m.result, formatFloat32(m.result))
	return b.String()
}

// describeBits renders a pattern's class and decoded fields.
func describeBits(bits uint32) string {
	d := Decode32(bits)
	cls := Classify32(bits)
	desc := cls.String()
	if cls == ClassNaN {
		if nanIsQuiet(bits) {
			desc = "NaN (quiet)"
		} else {
			desc = "NaN (signaling)"
		}
	}
	return fmt.Sprintf("0x%08X: %s sign=%d exp=0x%02X frac=0x%06X value=%s",
		bits, desc, d.Sign, d.Exponent, d.Fraction, formatFloat32(bits))
}

func formatFloat32(bits uint32) string {
	f := math.Float32frombits(bits)
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

const monitorHelp = `commands:
  start <a> <b>   queue a start request for the next tick (hex or decimal bits)
  tick [n]        advance n ticks (default 1)
  run             tick until the in-flight operation completes
  mul <a> <b>     run a full operation and print the result
  classify <x>    decode and classify a bit pattern
  regs            dump the pipeline registers
  reset           force the controller to Idle
  quit            leave the monitor`
