package domain

import (
	"errors"
	"testing"
)

func validConfig() NamingConfig {
	return NamingConfig{
		Order:     OrderByName,
		Separator: "_",
		Start:     1,
		Padding:   0,
		Case:      CaseLower,
	}
}

func TestNamingConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*NamingConfig)
		wantField string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *NamingConfig) {},
		},
		{
			name:      "missing order",
			mutate:    func(c *NamingConfig) { c.Order = OrderUnknown },
			wantField: "order",
		},
		{
			name:      "zero start",
			mutate:    func(c *NamingConfig) { c.Start = 0 },
			wantField: "start",
		},
		{
			name:      "negative start",
			mutate:    func(c *NamingConfig) { c.Start = -3 },
			wantField: "start",
		},
		{
			name:      "negative padding",
			mutate:    func(c *NamingConfig) { c.Padding = -1 },
			wantField: "padding",
		},
		{
			name:      "bad separator",
			mutate:    func(c *NamingConfig) { c.Separator = " " },
			wantField: "separator",
		},
		{
			name:      "missing case",
			mutate:    func(c *NamingConfig) { c.Case = CaseUnknown },
			wantField: "case",
		},
		{
			name: "no-number without keep",
			mutate: func(c *NamingConfig) {
				c.KeepStem = false
				c.NoNumber = true
			},
			wantField: "no-number",
		},
		{
			name: "no-number with keep is legal",
			mutate: func(c *NamingConfig) {
				c.KeepStem = true
				c.NoNumber = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError for %s, got %v", tt.wantField, err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("got field %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestCaseTransformApply(t *testing.T) {
	tests := []struct {
		name      string
		transform CaseTransform
		in        string
		want      string
	}{
		{"lower", CaseLower, "Holiday", "holiday"},
		{"upper", CaseUpper, "img", "IMG"},
		{"title single word", CaseTitle, "holiday", "Holiday"},
		{"title lowercases the rest", CaseTitle, "HOLIDAY", "Holiday"},
		{"digits untouched", CaseUpper, "007", "007"},
		{"unknown falls back to lower", CaseUnknown, "MiXeD", "mixed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.transform.Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCaseTransform(t *testing.T) {
	for token, want := range map[string]CaseTransform{
		"lower": CaseLower,
		"upper": CaseUpper,
		"title": CaseTitle,
	} {
		got, err := ParseCaseTransform(token)
		if err != nil {
			t.Fatalf("ParseCaseTransform(%q): %v", token, err)
		}
		if got != want {
			t.Errorf("ParseCaseTransform(%q) = %v, want %v", token, got, want)
		}
	}

	var cfgErr *ConfigError
	if _, err := ParseCaseTransform("original"); !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError, got %v", err)
	}
}

func TestTargetNamePadding(t *testing.T) {
	tests := []struct {
		name    string
		padding int
		index   int
		want    string
	}{
		{"padded", 3, 7, "007.txt"},
		{"no padding", 0, 7, "7.txt"},
		{"index wider than padding", 2, 123, "123.txt"},
	}

	entry := FileEntry{Name: "x.txt"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Padding = tt.padding
			if got := cfg.targetName(entry, tt.index); got != tt.want {
				t.Errorf("targetName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTargetNameComponents(t *testing.T) {
	entry := FileEntry{Name: "Holiday.JPG"}

	tests := []struct {
		name   string
		mutate func(*NamingConfig)
		want   string
	}{
		{
			name: "prefix and number",
			mutate: func(c *NamingConfig) {
				c.Prefix = "img"
				c.Padding = 2
				c.Case = CaseUpper
			},
			want: "IMG_01.JPG",
		},
		{
			name: "keep stem between prefix and number",
			mutate: func(c *NamingConfig) {
				c.Prefix = "trip"
				c.KeepStem = true
				c.Separator = "-"
			},
			want: "trip-holiday-1.JPG",
		},
		{
			name: "keep stem without number",
			mutate: func(c *NamingConfig) {
				c.KeepStem = true
				c.NoNumber = true
				c.Case = CaseTitle
			},
			want: "Holiday.JPG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if got := cfg.targetName(entry, 1); got != tt.want {
				t.Errorf("targetName = %q, want %q", got, tt.want)
			}
		})
	}
}
