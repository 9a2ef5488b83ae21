package main

import (
	"context"
	"testing"

	"orthoroute/core"
	"orthoroute/route"
	"orthoroute/worker"
)

func TestRouteHandlerOverPipe(t *testing.T) {
	cend, send := worker.Pipe()
	defer cend.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.NewServer(send, routeHandler(nil)).Serve(ctx)
	client := worker.NewClient(cend)
	go client.ReadPump(ctx)

	req := routeRequest{
		Style:  core.Style{core.KeyEdgeStyle: route.StyleOrthogonal},
		Source: &core.CellState{Rect: core.Rect{X: 0, Y: 0, Width: 100, Height: 50}},
		Target: &core.CellState{Rect: core.Rect{X: 300, Y: 200, Width: 100, Height: 50}},
	}
	var got []core.Point
	if err := client.Call(ctx, req, &got); err != nil {
		t.Fatalf("call failed: %v", err)
	}

	want := []core.Point{{X: 200, Y: 25}, {X: 350, Y: 25}, {X: 350, Y: 125}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRouteHandlerDefaultsUnderRequestStyle(t *testing.T) {
	cend, send := worker.Pipe()
	defer cend.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defaults := core.Style{core.KeyEdgeStyle: route.StyleEntityRelation, core.KeySegment: "50"}
	go worker.NewServer(send, routeHandler(defaults)).Serve(ctx)
	client := worker.NewClient(cend)
	go client.ReadPump(ctx)

	req := routeRequest{
		Source: &core.CellState{Rect: core.Rect{X: 0, Y: 0, Width: 100, Height: 50}},
		Target: &core.CellState{Rect: core.Rect{X: 300, Y: 0, Width: 100, Height: 50}},
	}
	var got []core.Point
	if err := client.Call(ctx, req, &got); err != nil {
		t.Fatalf("call failed: %v", err)
	}
	// A 30-unit default segment would put the stubs at x=130 and x=270.
	want := []core.Point{{X: 150, Y: 25}, {X: 250, Y: 25}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRouteHandlerUnknownStyle(t *testing.T) {
	cend, send := worker.Pipe()
	defer cend.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.NewServer(send, routeHandler(nil)).Serve(ctx)
	client := worker.NewClient(cend)
	go client.ReadPump(ctx)

	req := routeRequest{Style: core.Style{core.KeyEdgeStyle: "bogus"}}
	if err := client.Call(ctx, req, nil); err == nil {
		t.Error("expected an error for an unknown style")
	}
}
