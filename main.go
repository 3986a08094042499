// main.go - Main entry point for the multiply-fp32 behavioral model

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
	"flag"
	"fmt"
	"math/rand"
	"os"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;80;200;255m███████╗███╗   ███╗██╗   ██╗██╗     ██████╗ ██████╗\033[0m\n\033[38;2;100;210;255m██╔════╝████╗ ████║██║   ██║██║     ╚════██╗╚════██╗\033[0m\n\033[38;2;120;220;255m█████╗  ██╔████╔██║██║   ██║██║      █████╔╝ █████╔╝\033[0m\n\033[38;2;140;230;255m██╔══╝  ██║╚██╔╝██║██║   ██║██║      ╚═══██╗██╔═══╝\033[0m\n\033[38;2;160;240;255m██║     ██║ ╚═╝ ██║╚██████╔╝███████╗██████╔╝███████╗\033[0m\n\033[38;2;180;250;255m╚═╝     ╚═╝     ╚═╝ ╚═════╝ ╚══════╝╚═════╝ ╚══════╝\033[0m")
	fmt.Println("\nA cycle-accurate behavioral model of a multi-cycle IEEE-754 binary32 multiplier.")
	fmt.Println("(c) 2025 - 2026 Daniel Arthur")
	fmt.Println("https://github.com/danielarthurstp/multiply-fp32")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	monitorMode := flag.Bool("monitor", false, "interactive machine monitor")
	soakN := flag.Int("soak", 0, "run N random vectors against the reference oracle")
	seed := flag.Int64("seed", 1, "random seed for -soak")
	specialRate := flag.Float64("special-rate", 0.02, "fraction of special operands in -soak")
	allowNaN := flag.Bool("allow-nan", false, "draw NaN operands in -soak")
	allowInf := flag.Bool("allow-inf", false, "draw infinity operands in -soak")
	quietNaNOnly := flag.Bool("quiet-nan-only", true, "restrict drawn NaNs to quiet encodings")
	vectorsPath := flag.String("vectors", "", "run a YAML vector file")
	scriptPath := flag.String("script", "", "run a Lua testbench script")
	noBanner := flag.Bool("q", false, "suppress the banner")
	flag.Parse()

	if !*noBanner {
		boilerPlate()
	}

	switch {
	case *monitorMode:
		mon := NewMonitor(NewFMul32())
		if err := mon.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "monitor: %v\n", err)
			os.Exit(1)
		}

	case *scriptPath != "":
		if err := RunLuaBenchFile(*scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "bench: %v\n", err)
			os.Exit(1)
		}

	case *vectorsPath != "":
		vectors, err := LoadVectors(*vectorsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		failures := RunVectors(NewFMul32(), vectors, func(line string) {
			fmt.Println(line)
		})
		fmt.Printf("%d vectors, %d failures\n", len(vectors), failures)
		if failures > 0 {
			os.Exit(1)
		}

	case *soakN > 0:
		if runSoak(*soakN, *seed, SoakConfig{
			AllowNaN:     *allowNaN,
			AllowInf:     *allowInf,
			SpecialRate:  *specialRate,
			QuietNaNOnly: *quietNaNOnly,
		}) > 0 {
			os.Exit(1)
		}

	case flag.NArg() == 2:
		a, errA := parseBits(flag.Arg(0))
		b, errB := parseBits(flag.Arg(1))
		if errA != nil || errB != nil {
			fmt.Fprintln(os.Stderr, "operands must be 32-bit patterns, e.g. 0x40000000")
			os.Exit(1)
		}
		m := NewFMul32()
		z := m.Multiply(a, b)
		fmt.Println(describeBits(a))
		fmt.Println(describeBits(b))
		fmt.Println(describeBits(z))

	default:
		fmt.Println("\nusage:")
		fmt.Println("  multiply-fp32 <a> <b>          multiply two bit patterns")
		fmt.Println("  multiply-fp32 -monitor         interactive single-step monitor")
		fmt.Println("  multiply-fp32 -soak N          random sweep against the oracle")
		fmt.Println("  multiply-fp32 -vectors f.yaml  run a vector file")
		fmt.Println("  multiply-fp32 -script f.lua    run a Lua testbench")
		os.Exit(2)
	}
}

// runSoak runs a random sweep: N operand pairs drawn under
// cfg, each checked against the reference oracle. NaN results compare by
// class, never bit for bit. Pairs whose true product is subnormal are
// resampled: realigned subnormal results truncate toward zero, so the
// RNE oracle is not a valid expectation for them; the edge-case tests
// pin the truncated patterns directly. Returns the mismatch count.
func runSoak(n int, seed int64, cfg SoakConfig) int {
	rng := rand.New(rand.NewSource(seed))
	m := NewFMul32()
	failures := 0
	resampled := 0
	for i := 0; i < n; i++ {
		a := RandOperandBits(rng, cfg)
		b := RandOperandBits(rng, cfg)
		want := RefMul32(a, b)
		for Classify32(want) == ClassSubnormal {
			resampled++
			a = RandOperandBits(rng, cfg)
			b = RandOperandBits(rng, cfg)
			want = RefMul32(a, b)
		}
		got := m.Multiply(a, b)
		if got != want && !(IsNaN32(got) && IsNaN32(want)) {
			failures++
			fmt.Printf("[%d] MISMATCH a=0x%08X b=0x%08X want=0x%08X got=0x%08X\n",
				i, a, b, want, got)
		}
	}
	fmt.Printf("soak: %d vectors, %d failures, %d subnormal draws resampled (seed %d)\n",
		n, failures, resampled, seed)
	return failures
}
