package dedup

import "testing"

func TestNormalizeSplitsArtistAndTitle(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     ParsedTitle
	}{
		{
			name:     "plain artist dash title",
			filename: "Daft Punk - One More Time.mp3",
			want:     ParsedTitle{Artist: "daft punk", Title: "one more time"},
		},
		{
			name:     "track prefix stripped",
			filename: "03. Daft Punk - One More Time.mp3",
			want:     ParsedTitle{Artist: "daft punk", Title: "one more time"},
		},
		{
			name:     "brackets and underscores cleaned",
			filename: "[2001]_Daft_Punk_-_One_More_Time.flac",
			want:     ParsedTitle{Artist: "daft punk", Title: "one more time"},
		},
		{
			name:     "version annotation extracted",
			filename: "Moby - Porcelain (Radio Edit).mp3",
			want:     ParsedTitle{Artist: "moby", Title: "porcelain", Version: "radio edit"},
		},
		{
			name:     "year annotation extracted",
			filename: "Moby - Porcelain (2017).mp3",
			want:     ParsedTitle{Artist: "moby", Title: "porcelain", Version: "2017"},
		},
		{
			name:     "unrecognized parenthetical stays in title",
			filename: "New Order - Temptation (Blue).mp3",
			want:     ParsedTitle{Artist: "new order", Title: "temptation (blue)"},
		},
		{
			name:     "dash inside title preserved",
			filename: "Orbital - Halcyon - On and On.mp3",
			want:     ParsedTitle{Artist: "orbital", Title: "halcyon - on and on"},
		},
		{
			name:     "no separator degrades to whole string",
			filename: "Untitled Demo.wav",
			want:     ParsedTitle{Artist: "untitled demo", Title: "untitled demo"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.filename)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %+v, want %+v", tc.filename, got, tc.want)
			}
		})
	}
}

func TestNormalizeArtistOrderingAndFeaturing(t *testing.T) {
	a := Normalize("Armand Van Helden, Duane Harden - You Don't Know Me.mp3")
	b := Normalize("Duane Harden, Armand Van Helden - You Don't Know Me.flac")
	if a.Artist != b.Artist {
		t.Fatalf("artist ordering should not matter: %q vs %q", a.Artist, b.Artist)
	}

	feat := Normalize("Moloko feat. Boris - Sing It Back.mp3")
	featuring := Normalize("Moloko featuring Boris - Sing It Back.mp3")
	if feat.Artist != featuring.Artist {
		t.Fatalf("feat. should normalize to featuring: %q vs %q", feat.Artist, featuring.Artist)
	}
}

func TestNormalizeUnbalancedParens(t *testing.T) {
	got := Normalize("Artist - Broken (Take.mp3")
	if got.Version != "" {
		t.Fatalf("unbalanced parens must not yield a version, got %q", got.Version)
	}
	if got.Title != "broken (take" {
		t.Fatalf("unexpected title %q", got.Title)
	}
}
