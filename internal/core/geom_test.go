package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	DrawBox(s, NewRect(1, 1, 5, 4), ColorWhite)

	expected := []string{
		"          ",
		" ┌───┐    ",
		" │   │    ",
		" │   │    ",
		" └───┘    ",
		"          ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}

func TestDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(4, 4)
	DrawBox(s, NewRect(0, 0, 1, 3), ColorWhite)

	for y := 0; y < 4; y++ {
		if got := s.Row(y); got != "    " {
			t.Errorf("row %d = %q, expected blank", y, got)
		}
	}
}

func TestCenterX(t *testing.T) {
	tests := []struct {
		width int
		text  string
		want  int
	}{
		{80, "Goodbye!", 36},
		{80, "", 40},
		{10, "0123456789", 0},
		{11, "ab", 4},
		{20, "Hi", 9},
	}
	for _, tc := range tests {
		if got := CenterX(tc.width, tc.text); got != tc.want {
			t.Errorf("CenterX(%d, %q) = %d, expected %d", tc.width, tc.text, got, tc.want)
		}
	}
}
