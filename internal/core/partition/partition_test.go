package partition

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		chinese string
		english string
	}{
		{
			name:    "Mixed scripts with digits",
			input:   "Hello世界123",
			chinese: "世界",
			english: "Hello",
		},
		{
			name:    "Multiple english runs joined by spaces",
			input:   "HKU-香港大學/Main Campus",
			chinese: "香港大學",
			english: "HKU Main Campus",
		},
		{
			name:    "Chinese runs concatenated without separators",
			input:   "香港, 大學",
			chinese: "香港大學",
			english: "",
		},
		{
			name:    "Empty input",
			input:   "",
			chinese: "",
			english: "",
		},
		{
			name:    "No recognizable script",
			input:   "12345 !@#$%",
			chinese: "",
			english: "",
		},
		{
			name:    "English only with punctuation boundaries",
			input:   "it's a test",
			chinese: "",
			english: "it s a test",
		},
		{
			name:    "Order preserved across alternating scripts",
			input:   "a香b港c",
			chinese: "香港",
			english: "a b c",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chi, eng := Split(tc.input)
			if chi != tc.chinese || eng != tc.english {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
					tc.input, chi, eng, tc.chinese, tc.english)
			}
		})
	}
}

func TestSplitIdempotent(t *testing.T) {
	input := "香港大學 The University of Hong Kong (HKU) 2024"
	chi1, eng1 := Split(input)
	chi2, eng2 := Split(input)
	if chi1 != chi2 || eng1 != eng2 {
		t.Errorf("Split is not deterministic: (%q,%q) vs (%q,%q)", chi1, eng1, chi2, eng2)
	}
}
