package knowledge

import "testing"

func TestCatalogSize(t *testing.T) {
	if got := len(Catalog()); got != 6 {
		t.Errorf("catalog size = %d, want 6", got)
	}
}

func TestFilterByTerm(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"database", []string{"Database Management Systems"}},
		{"SQL", []string{"Database Management Systems"}}, // matches both topic and description
		{"normalization", []string{"Database Management Systems"}},
		{"cryptography", []string{"Cybersecurity"}},
		{"", []string{
			"Introduction to Programming", "Database Management Systems", "Web Development",
			"Computer Networks", "Cybersecurity", "Computer Architecture",
		}},
		{"blockchain", nil},
	}

	for _, tt := range tests {
		got := Filter(tt.term, "")
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q) returned %d courses, want %d", tt.term, len(got), len(tt.want))
			continue
		}
		for i, c := range got {
			if c.Title != tt.want[i] {
				t.Errorf("Filter(%q)[%d] = %q, want %q", tt.term, i, c.Title, tt.want[i])
			}
		}
	}
}

func TestFilterByLevel(t *testing.T) {
	hnd := Filter("", LevelHND)
	if len(hnd) != 2 {
		t.Fatalf("HND courses = %d, want 2", len(hnd))
	}
	for _, c := range hnd {
		if c.Level != LevelHND {
			t.Errorf("course %s leaked into HND filter", c.Title)
		}
	}

	if got := Filter("network", LevelND); len(got) != 0 {
		t.Errorf("ND 'network' search = %d results, want 0", len(got))
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	a := Filter("PYTHON", "")
	b := Filter("python", "")
	if len(a) != 1 || len(b) != 1 || a[0].ID != b[0].ID {
		t.Errorf("case sensitivity leak: %v vs %v", a, b)
	}
}
