package domain

import "testing"

func TestFileEntryStemExt(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		wantStem string
		wantExt  string
	}{
		{"simple", "photo1.jpg", "photo1", ".jpg"},
		{"no extension", "README", "README", ""},
		{"double extension", "archive.tar.gz", "archive.tar", ".gz"},
		{"dot file", ".gitignore", "", ".gitignore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FileEntry{Name: tt.fileName}
			if got := e.Stem(); got != tt.wantStem {
				t.Errorf("Stem() = %q, want %q", got, tt.wantStem)
			}
			if got := e.Ext(); got != tt.wantExt {
				t.Errorf("Ext() = %q, want %q", got, tt.wantExt)
			}
		})
	}
}

func TestEmbeddedNumber(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     int
	}{
		{"trailing digits", "file123.txt", 123},
		{"digits in the middle", "image_45_test.png", 45},
		{"first run wins", "a1b22.txt", 1},
		{"no digits", "no_numbers_here.txt", -1},
		{"digits only in extension", "file.mp3", -1},
		{"leading zeros", "ep007.mkv", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FileEntry{Name: tt.fileName}
			if got := e.EmbeddedNumber(); got != tt.want {
				t.Errorf("EmbeddedNumber() = %d, want %d", got, tt.want)
			}
		})
	}
}
