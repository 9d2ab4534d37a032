package input

import (
	"image"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestSwipeResolves(t *testing.T) {
	tests := []struct {
		name string
		move image.Point
		want snake.Heading
		ok   bool
	}{
		{"right", image.Pt(131, 110), snake.Right, true},
		{"left", image.Pt(60, 90), snake.Left, true},
		{"down", image.Pt(110, 140), snake.Down, true},
		{"up", image.Pt(95, 50), snake.Up, true},
		{"at threshold", image.Pt(130, 100), snake.None, false},
		{"short", image.Pt(110, 95), snake.None, false},
		{"tie goes vertical", image.Pt(140, 140), snake.Down, true},
		{"dominant x under threshold", image.Pt(125, 120), snake.None, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSwipe(30)
			s.Begin(image.Pt(100, 100))
			got, ok := s.Move(tc.move)
			if ok != tc.ok || got != tc.want {
				t.Errorf("Move(%v) = %v, %v; expected %v, %v", tc.move, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestSwipeYieldsOnce(t *testing.T) {
	s := NewSwipe(30)
	s.Begin(image.Pt(0, 0))

	if _, ok := s.Move(image.Pt(10, 0)); ok {
		t.Fatal("short move resolved")
	}
	if !s.Tracking() {
		t.Fatal("short move should keep the start point")
	}
	if h, ok := s.Move(image.Pt(40, 0)); !ok || h != snake.Right {
		t.Fatalf("Move = %v, %v; expected right", h, ok)
	}
	if _, ok := s.Move(image.Pt(40, 80)); ok {
		t.Error("second direction from the same gesture")
	}

	s.Begin(image.Pt(40, 80))
	if h, ok := s.Move(image.Pt(40, 20)); !ok || h != snake.Up {
		t.Errorf("new gesture Move = %v, %v; expected up", h, ok)
	}
}

func TestSwipeEndClears(t *testing.T) {
	s := NewSwipe(30)
	if _, ok := s.Move(image.Pt(100, 0)); ok {
		t.Error("move without Begin resolved")
	}
	s.Begin(image.Pt(0, 0))
	s.End()
	if _, ok := s.Move(image.Pt(100, 0)); ok {
		t.Error("move after End resolved")
	}
}
