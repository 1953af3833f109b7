package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// ErrDeliveryFormat reports a syntactically malformed deliveries file.
var ErrDeliveryFormat = errors.New("malformed deliveries file")

// ParseDeliveries reads delivery requests until end of input. Each request
// is three whitespace-separated integers: row, column, priority. Values are
// passed through as read; range checks on coordinates and priorities belong
// to the planner, which knows what to do with offenders.
func ParseDeliveries(r io.Reader) ([]DeliveryRequest, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	requests := []DeliveryRequest{}
	for {
		x, ok, err := scanInt(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeliveryFormat, err)
		}
		if !ok {
			return requests, nil
		}

		y, ok, err := scanInt(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeliveryFormat, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: incomplete entry after %d deliveries", ErrDeliveryFormat, len(requests))
		}

		tier, ok, err := scanInt(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeliveryFormat, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: incomplete entry after %d deliveries", ErrDeliveryFormat, len(requests))
		}

		requests = append(requests, DeliveryRequest{
			Target: Cell{X: x, Y: y},
			Tier:   Tier(tier),
		})
	}
}

// LoadDeliveriesFile reads a deliveries file of (row, column, priority)
// triples.
func LoadDeliveriesFile(path string) ([]DeliveryRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deliveries file: %w", err)
	}
	defer f.Close()

	requests, err := ParseDeliveries(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load deliveries file %s: %w", path, err)
	}

	log.Printf("📦 Loaded %d deliveries from %s\n", len(requests), path)
	return requests, nil
}
