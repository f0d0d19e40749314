package level

import (
	"slices"
	"strings"
	"testing"
	"testing/fstest"
)

func TestParseDisabled(t *testing.T) {
	d, err := ParseDisabled(strings.NewReader("1:0,2,5\n\n2: 3 , 4\n1:7\n"))
	if err != nil {
		t.Fatalf("ParseDisabled: %v", err)
	}
	if got := d[1]; !slices.Equal(got, []int{0, 2, 5, 7}) {
		t.Errorf("level 1 = %v", got)
	}
	if got := d[2]; !slices.Equal(got, []int{3, 4}) {
		t.Errorf("level 2 = %v", got)
	}
	set := d.For(1)
	if !set[5] || set[1] || len(set) != 4 {
		t.Errorf("For(1) = %v", set)
	}
	if len(d.For(9)) != 0 {
		t.Errorf("For(9) should be empty")
	}
}

func TestParseDisabledKeepsGoodLines(t *testing.T) {
	d, err := ParseDisabled(strings.NewReader("x:1\n3\n4:1,y,2\n"))
	if err == nil {
		t.Fatal("expected error for malformed lines")
	}
	if got := d[4]; !slices.Equal(got, []int{1, 2}) {
		t.Errorf("level 4 = %v", got)
	}
	if len(d) != 1 {
		t.Errorf("table = %v", d)
	}
}

func TestLoadDisabledMissingFile(t *testing.T) {
	d, err := LoadDisabled(fstest.MapFS{}, DisabledName)
	if err != nil || len(d) != 0 {
		t.Fatalf("got %v, %v", d, err)
	}
}
