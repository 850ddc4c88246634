package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 9}
	if s.Empty() {
		t.Error("span should not be empty")
	}
	if s.Len() != 5 {
		t.Errorf("expected length 5, got %d", s.Len())
	}
	if (Span{File: 1, Start: 3, End: 3}).Empty() != true {
		t.Error("zero-width span should be empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}
	got := a.Cover(b)
	if got.Start != 5 || got.End != 20 {
		t.Errorf("cover = %v, want 1:5-20", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cover across files must keep the receiver, got %v", got)
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n\nefg"
	idx := buildLineIndex([]byte("ab\ncd\n\nefg"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline ends line 1
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
		{10, LineCol{4, 4}}, // one past the end
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColSingleLine(t *testing.T) {
	idx := buildLineIndex([]byte("no newline here"))
	if got := toLineCol(idx, 6); (got != LineCol{1, 7}) {
		t.Errorf("expected 1:7, got %+v", got)
	}
}
