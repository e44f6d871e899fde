package wtree

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		exp   []string
	}{
		{"hello world", 100, []string{"hello world"}},
		{"hello world", 35, []string{"hello", "world"}},
		{"abcdefghij", 21, []string{"abc", "def", "ghi", "j"}},
		{"ab", 0, []string{"a", "b"}},
		{"a\n\nb", 100, []string{"a", "", "b"}},
		{"", 100, []string{""}},
	}
	for _, test := range tests {
		got := wrapText(DefaultFont, test.text, test.width)
		if diff := cmp.Diff(test.exp, got); diff != "" {
			t.Errorf("wrap %q at %d (-exp +got):\n%s", test.text, test.width, diff)
		}
	}
}

func TestTextSegments(t *testing.T) {
	min, natural := textSegments(DefaultFont, "hello world\nhi")
	if min != 35 || natural != 77 {
		t.Fatalf("segments: min %d, natural %d, need 35 and 77", min, natural)
	}
}

func TestCellFont(t *testing.T) {
	f := CellFont{}
	if s := f.StringSize("世界"); s != image.Pt(4, 1) {
		t.Fatalf("size of wide runes %v", s)
	}
	if s := f.StringSize("ab"); s != image.Pt(2, 1) {
		t.Fatalf("size %v", s)
	}
	got := wrapText(f, "世界世", 4)
	if diff := cmp.Diff([]string{"世界", "世"}, got); diff != "" {
		t.Fatalf("wrap of wide runes (-exp +got):\n%s", diff)
	}
}
