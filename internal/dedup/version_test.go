package dedup

import "testing"

func TestClassifyCollectsAllMarkers(t *testing.T) {
	annotation := Classify("Extended Club Mix")
	if !annotation.HasMarkers() {
		t.Fatal("expected markers for Extended Club Mix")
	}
	want := map[string]bool{"mix": true, "club": true, "extended": true, "club mix": true}
	for _, marker := range annotation.Markers {
		if !want[marker] {
			t.Fatalf("unexpected marker %q in %v", marker, annotation.Markers)
		}
	}
	if len(annotation.Markers) != len(want) {
		t.Fatalf("got markers %v, want all of %v", annotation.Markers, want)
	}
}

func TestClassifyYearHeuristic(t *testing.T) {
	tests := []struct {
		raw      string
		isYear   bool
		hasAnyAt bool
	}{
		{"2017", true, true},
		{"1999 Reissue", true, true},
		{"Take 2", false, false},
		{"", false, false},
	}
	for _, tc := range tests {
		annotation := Classify(tc.raw)
		if annotation.HasMarkers() != tc.hasAnyAt {
			t.Fatalf("Classify(%q).HasMarkers() = %v, want %v", tc.raw, annotation.HasMarkers(), tc.hasAnyAt)
		}
		if tc.isYear && (len(annotation.Markers) != 1 || annotation.Markers[0] != yearMarker) {
			t.Fatalf("Classify(%q) = %v, want the year marker alone", tc.raw, annotation.Markers)
		}
	}
}

func TestEquivalentVersions(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"both absent", "", "", true},
		{"absent vs present", "", "radio edit", false},
		{"identical text", "radio edit", "radio edit", true},
		{"shared marker family", "club mix", "extended club mix", true},
		{"disjoint families", "radio edit", "club mix", false},
		{"two years", "2017", "2019", true},
		{"year vs marker", "2017", "remix", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EquivalentVersions(tc.a, tc.b); got != tc.want {
				t.Fatalf("EquivalentVersions(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := EquivalentVersions(tc.b, tc.a); got != tc.want {
				t.Fatalf("EquivalentVersions(%q, %q) = %v, want %v (symmetry)", tc.b, tc.a, got, tc.want)
			}
		})
	}
}
