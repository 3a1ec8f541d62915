package resolve

import "testing"

func TestParseMTGLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want MTGKey
		ok   bool
	}{
		{
			name: "double faced card keeps front face",
			line: "1 Kytheon, Hero of Akros / Gideon, Battle-Forged (ORI) 23",
			want: MTGKey{Name: "Kytheon, Hero of Akros", SetCode: "ori", CollectorNumber: "23"},
			ok:   true,
		},
		{
			name: "split card keeps front half",
			line: "1 Fire // Ice (MH2) 290",
			want: MTGKey{Name: "Fire", SetCode: "mh2", CollectorNumber: "290"},
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			line: "  4 Lightning Bolt (2XM) 129  ",
			want: MTGKey{Name: "Lightning Bolt", SetCode: "2xm", CollectorNumber: "129"},
			ok:   true,
		},
		{
			name: "collector number with suffix",
			line: "1 Island (UNF) 236a",
			want: MTGKey{Name: "Island", SetCode: "unf", CollectorNumber: "236a"},
			ok:   true,
		},
		{name: "section header", line: "Sideboard", ok: false},
		{name: "missing set", line: "1 Lightning Bolt", ok: false},
		{name: "missing quantity", line: "Lightning Bolt (2XM) 129", ok: false},
		{name: "empty", line: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMTGLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseMTGLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseMTGLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestMTGKeyCardID(t *testing.T) {
	lines := map[string]string{
		"1 Kytheon, Hero of Akros / Gideon, Battle-Forged (ORI) 23": "mtgori23",
		"2 Counterspell (MH2) 267":                                  "mtgmh2267",
		"1 Forest (UNF) 239★":                                       "mtgunf239★",
	}

	for line, want := range lines {
		key, ok := ParseMTGLine(line)
		if !ok {
			t.Fatalf("ParseMTGLine(%q) did not match", line)
		}
		if got := key.CardID(); got != want {
			t.Errorf("CardID() for %q = %q, want %q", line, got, want)
		}
	}
}
