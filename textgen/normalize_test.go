// ABOUTME: Tests for output normalization and title extraction.
// ABOUTME: Covers one-line outputs, full-width markers and spaces, truncation and idempotency.
package textgen

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "one line output gets section breaks",
			in:   "1) タイトル: 裏取り 2) 詳細: デュエリストがBサイトへエントリーする。 3) 注意: 音を立てない。",
			want: "1) タイトル: 裏取り\n2) 詳細: デュエリストがBサイトへエントリーする。\n3) 注意: 音を立てない。",
		},
		{
			name: "collapses spaces and tabs",
			in:   "  1) タイトル:   A強襲\t\tです  ",
			want: "1) タイトル: A強襲 です",
		},
		{
			name: "already normalized is unchanged",
			in:   "1) タイトル: x\n2) 詳細: y\n3) 注意: z",
			want: "1) タイトル: x\n2) 詳細: y\n3) 注意: z",
		},
		{
			name: "empty",
			in:   " \n\t ",
			want: "",
		},
		{
			name: "ideographic spaces between sections",
			in:   "1) タイトル: 速攻\u30002) 詳細: A\u30003) 注意: B",
			want: "1) タイトル: 速攻\n2) 詳細: A\n3) 注意: B",
		},
		{
			name: "adjacent markers each get a line",
			in:   "X 2) 3) note",
			want: "X\n2)\n3) note",
		},
		{
			name: "marker without trailing space is left alone",
			in:   "残り 2)の後に 3)",
			want: "残り 2)の後に 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"1) タイトル: 裏取り 2) 詳細: 待機する。   3) 注意: 静かに。",
		"  text   with\t\tgaps  ",
		"1) タイトル: a\n\n  2) 詳細: b",
		"X 2) 3) note",
		"速攻\u30002) 詳細: A",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"simple", "1) タイトル: ミッド制圧\n2) 詳細: ...", "ミッド制圧", true},
		{"stops at slash", "1) タイトル: 歩き縛り / 別案\n2) 詳細: ...", "歩き縛り", true},
		{"stops at inline detail marker", "1) タイトル: 遅延設置 2) 詳細: 設置する。", "遅延設置", true},
		{"full width markers", "１）タイトル：静寂の守り\n２）詳細：待機", "静寂の守り", true},
		{"no space after colon", "1)タイトル:即設置", "即設置", true},
		{"missing", "タイトルなしの文章", "", false},
		{"empty input", "", "", false},
		{"blank title", "1) タイトル: \n2) 詳細: x", "", false},
		{"title on the next line", "1) タイトル:\n速攻ラッシュ\n2) 詳細: x", "速攻ラッシュ", true},
		{"ideographic space after colon", "1) タイトル:\u3000静かな裏取り\n2) 詳細: x", "静かな裏取り", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTitle(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTitleTruncates(t *testing.T) {
	long := strings.Repeat("長", 60)
	got, ok := ExtractTitle("1) タイトル: " + long)
	if !ok {
		t.Fatal("expected a title")
	}
	if n := len([]rune(got)); n != MaxTitleRunes {
		t.Errorf("got %d runes, want %d", n, MaxTitleRunes)
	}
}
