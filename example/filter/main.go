package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/tektronix/TekHSI"
)

// recordLengthChanged is a custom acceptance filter: only acquisitions
// whose record length changed reach the consumer.
func recordLengthChanged(prev, cur tekhsi.HeaderSet) bool {
	if prev == nil {
		return false
	}
	for key, c := range cur {
		p, ok := prev[key]
		if !ok || p.SampleCount != c.SampleCount {
			return true
		}
	}
	return false
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := tekhsi.Connect(ctx, "192.168.0.1:5000",
		tekhsi.WithFilter(recordLengthChanged),
	)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close()

	for {
		access, err := conn.AccessData(ctx, tekhsi.NextAcq)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Fatalf("access data: %v", err)
		}
		b := access.Bundle()
		for _, name := range b.Symbols() {
			h, _ := b.Header(name)
			fmt.Printf("record length now %d on %s (acq %d)\n", h.SampleCount, name, b.TransID)
		}
		access.Release()
	}
}
