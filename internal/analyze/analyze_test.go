package analyze_test

import (
	"reflect"
	"testing"

	"github.com/scasella/ClipDrop/internal/analyze"
)

func TestTopWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		n        int
		expected []analyze.WordFreq
	}{
		{
			name:     "empty text",
			text:     "",
			n:        5,
			expected: nil,
		},
		{
			name:     "zero n",
			text:     "some words here",
			n:        0,
			expected: nil,
		},
		{
			name:     "short tokens filtered",
			text:     "a an to of it",
			n:        5,
			expected: nil,
		},
		{
			name: "inflections group under one stem",
			text: "run runs running runner",
			n:    5,
			expected: []analyze.WordFreq{
				{Word: "run", Count: 3},
				{Word: "runner", Count: 1},
			},
		},
		{
			name: "ties break alphabetically",
			text: "The cat sat. The cats sat again.",
			n:    3,
			expected: []analyze.WordFreq{
				{Word: "cat", Count: 2},
				{Word: "sat", Count: 2},
				{Word: "the", Count: 2},
			},
		},
		{
			name: "n caps the ranking",
			text: "apple apple apple banana banana cherry",
			n:    2,
			expected: []analyze.WordFreq{
				{Word: "apple", Count: 3},
				{Word: "banana", Count: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyze.TopWords(tt.text, tt.n)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("TopWords(%q, %d) = %v, want %v", tt.text, tt.n, result, tt.expected)
			}
		})
	}
}

func TestTopWordsRepresentativeForm(t *testing.T) {
	// the most common surface form should stand in for its stem group
	result := analyze.TopWords("cats cats cats cat", 1)
	if len(result) != 1 {
		t.Fatalf("expected one entry, got %v", result)
	}
	if result[0].Word != "cats" || result[0].Count != 4 {
		t.Errorf("TopWords = %v, want [{cats 4}]", result)
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty text", "", 0},
		{"whitespace only", "  \n\t ", 0},
		{"single sentence", "The quick brown fox jumps over the lazy dog.", 1},
		{"no terminal punctuation", "hello world", 1},
		{"three sentences", "This is one. This is two! Is this three?", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := analyze.Sentences(tt.text)
			if err != nil {
				t.Fatalf("Sentences(%q) returned error: %v", tt.text, err)
			}
			if result != tt.expected {
				t.Errorf("Sentences(%q) = %d, want %d", tt.text, result, tt.expected)
			}
		})
	}
}
