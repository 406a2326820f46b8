package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// jseqgen emits simulated journal snippets (blank-line separated) in the
// shape jseq ingests: a label line followed by free text containing
// request/response journal markers with M/D/YYYY h:mm:ss.mmm AM/PM
// timestamps. Useful for demos and for exercising --follow.

var services = []string{
	"orders-api", "billing-svc", "auth-gateway", "inventory", "notifier",
	"payments", "search-indexer", "profile-svc",
}

var noise = []string{
	"retrying upstream call after transient failure",
	"cache miss for key, falling back to origin",
	"connection pool at 80% utilization",
	"validated payload against schema v2",
	"circuit breaker closed again",
}

func main() {
	var (
		rate     float64
		count    int
		outPath  string
		toStdout bool
		seed     int64
	)
	flag.Float64Var(&rate, "rate", 2.0, "snippets per second")
	flag.IntVar(&count, "count", 0, "stop after this many snippets (0 = until interrupted)")
	flag.StringVar(&outPath, "out", "", "output file path (appends)")
	flag.BoolVar(&toStdout, "stdout", true, "write to stdout")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var w *bufio.Writer
	if outPath != "" {
		f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = bufio.NewWriter(f)
	} else if toStdout {
		w = bufio.NewWriter(os.Stdout)
	} else {
		fmt.Fprintln(os.Stderr, "nothing to write to: pass --out or --stdout")
		os.Exit(1)
	}
	defer w.Flush()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	interval := time.Duration(float64(time.Second) / rate)
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	now := time.Now()
	emitted := 0
	for {
		select {
		case <-sigCh:
			return
		case <-ticker.C:
			now = now.Add(time.Duration(rng.Intn(1500)) * time.Millisecond)
			writeSnippet(w, rng, now)
			w.Flush()
			emitted++
			if count > 0 && emitted >= count {
				return
			}
		}
	}
}

func writeSnippet(w *bufio.Writer, rng *rand.Rand, base time.Time) {
	svc := services[rng.Intn(len(services))]
	fmt.Fprintf(w, "%s\tcorrelation=%08x\n", svc, rng.Uint32())
	if rng.Float64() < 0.2 {
		fmt.Fprintf(w, "%s\n", noise[rng.Intn(len(noise))])
	}

	hasReq := rng.Float64() < 0.9
	hasResp := rng.Float64() < 0.8
	if hasReq {
		fmt.Fprintf(w, "%s request journal entry created\n", stamp(base))
	}
	if hasResp {
		latency := time.Duration(50+rng.Intn(900)) * time.Millisecond
		fmt.Fprintf(w, "%s response journal entry created\n", stamp(base.Add(latency)))
	}
	if !hasReq && !hasResp {
		fmt.Fprintf(w, "no journal activity in this window\n")
	}
	fmt.Fprintln(w)
}

func stamp(t time.Time) string {
	return t.Format("1/2/2006 3:04:05.000 PM")
}
