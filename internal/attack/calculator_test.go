package attack

import (
	"reflect"
	"testing"
)

func TestGarbageBlocks(t *testing.T) {
	tests := []struct {
		individual int
		want       int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 2},
		{10, 5},
		{11, 5},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := GarbageBlocks(tt.individual); got != tt.want {
			t.Errorf("GarbageBlocks(%d) = %d, want %d", tt.individual, got, tt.want)
		}
	}
}

func TestStrikeShape(t *testing.T) {
	tests := []struct {
		size int
		want Shape
	}{
		{4, Shape{1, 4}},
		{6, Shape{3, 2}},
		{8, Shape{2, 4}},
		{9, Shape{3, 3}},
		{12, Shape{3, 4}},
		{16, Shape{4, 4}},
	}
	for _, tt := range tests {
		got, ok := StrikeShape(tt.size)
		if !ok || got != tt.want {
			t.Errorf("StrikeShape(%d) = %v, %v; want %v, true", tt.size, got, ok, tt.want)
		}
	}

	for _, size := range []int{0, 3, 5, 7, 10, 11, 13, 20} {
		if _, ok := StrikeShape(size); ok {
			t.Errorf("StrikeShape(%d) defined, want no canonical shape", size)
		}
	}
}

func TestClusterStrikes(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		chain int
		want  []Shape
	}{
		{"size 4 chain 1", 4, 1, []Shape{{1, 4}}},
		{"size 4 chain 2", 4, 2, []Shape{{1, 8}}},
		{"size 4 chain 3 hits the cap", 4, 3, []Shape{{1, 12}}},
		{"size 4 chain 4 splits", 4, 4, []Shape{{1, 12}, {1, 12}}},
		{"size 9 chain 1", 9, 1, []Shape{{3, 3}}},
		{"size 9 chain 2", 9, 2, []Shape{{3, 6}}},
		{"size 9 chain 3", 9, 3, []Shape{{3, 9}}},
		{"size 9 chain 4", 9, 4, []Shape{{3, 12}}},
		{"size 6 chain 6", 6, 6, []Shape{{3, 12}}},
		{"size 16 chain 1 single sword", 16, 1, []Shape{{4, 4}}},
		{"size 16 chain 2 two swords", 16, 2, []Shape{{2, 6}, {2, 6}}},
		{"size 16 chain 3 two swords", 16, 3, []Shape{{2, 9}, {2, 9}}},
		{"size 16 chain 4 capped swords", 16, 4, []Shape{{2, 12}, {2, 12}}},
		{"chain below 1 treated as 1", 4, 0, []Shape{{1, 4}}},
		{"unknown size", 5, 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClusterStrikes(tt.size, tt.chain)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClusterStrikes(%d, %d) = %v, want %v", tt.size, tt.chain, got, tt.want)
			}
		})
	}
}

func TestShapeRoundTrip(t *testing.T) {
	for _, desc := range []string{"1x4", "3x2", "2x12", "4x4"} {
		shape, err := ParseShape(desc)
		if err != nil {
			t.Fatalf("ParseShape(%q): %v", desc, err)
		}
		if got := shape.String(); got != desc {
			t.Errorf("round trip %q → %q", desc, got)
		}
	}

	for _, desc := range []string{"", "4", "x4", "4x", "axb"} {
		if _, err := ParseShape(desc); err == nil {
			t.Errorf("ParseShape(%q) succeeded, want error", desc)
		}
	}
}
