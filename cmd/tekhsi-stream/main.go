package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tektronix/TekHSI"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "run":
		err = runCommand(os.Args[2:])
	case "validate":
		err = validateCommand(os.Args[2:])
	case "stats":
		err = statsCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("tekhsi-stream %s: %v", cmd, err)
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "./tekhsi.yaml", "Path to client configuration file")
	count := fs.Int("count", 0, "Stop after this many acquisitions (0 = run until interrupted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := tekhsi.LoadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := tekhsi.Connect(ctx, cfg.Instrument.URL, tekhsi.WithConfig(cfg))
	if err != nil {
		return err
	}
	defer conn.Close()

	seen := 0
	for *count == 0 || seen < *count {
		access, err := conn.AccessData(ctx, tekhsi.NewData)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		printBundle(access.Bundle())
		access.Release()
		seen++
	}
	return nil
}

func printBundle(b *tekhsi.AcquisitionBundle) {
	for _, name := range b.Symbols() {
		wfm, ok := b.Waveform(name)
		if !ok {
			continue
		}
		fmt.Printf("[acq %d] %s: %d samples (%T)\n", b.TransID, name, wfm.RecordLength(), wfm)
	}
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./tekhsi.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := tekhsi.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func statsCommand(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	url := fs.String("url", "http://localhost:9100/metrics", "Prometheus metrics endpoint")
	interval := fs.Duration("interval", 2*time.Second, "Refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	fmt.Printf("Streaming metrics from %s (Ctrl+C to stop)\n", *url)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := printMetricsSnapshot(*url); err != nil {
				fmt.Fprintf(os.Stderr, "stats error: %v\n", err)
			}
		}
	}
}

func printMetricsSnapshot(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	targets := map[string]float64{
		"tekhsi_acqs_committed_total": 0,
		"tekhsi_transfer_bytes_total": 0,
		"tekhsi_record_length":        0,
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for key := range targets {
			if strings.HasPrefix(line, key+" ") {
				var value float64
				if _, err := fmt.Sscanf(line, key+" %f", &value); err == nil {
					targets[key] = value
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("[%s] acqs=%.0f bytes=%.0f record=%.0f\n",
		time.Now().Format(time.RFC3339),
		targets["tekhsi_acqs_committed_total"],
		targets["tekhsi_transfer_bytes_total"],
		targets["tekhsi_record_length"],
	)
	return nil
}

func printUsage() {
	fmt.Printf(`TekHSI streaming client

Usage:
  tekhsi-stream <command> [flags]

Commands:
  run        Connect to the instrument and print each committed acquisition
  validate   Load and validate a config file without connecting
  stats      Poll the Prometheus metrics endpoint and print live counters

Examples:
  tekhsi-stream run -config ./tekhsi.yaml
  tekhsi-stream run -config ./tekhsi.yaml -count 10
  tekhsi-stream validate -config ./tekhsi.yaml
  tekhsi-stream stats -url http://localhost:9100/metrics -interval 1s
`)
}
