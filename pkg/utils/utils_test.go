package utils

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		length   int
		expected string
	}{
		{"0xab5801a7d398351b8be11c439e05c5b3259aec9b", 10, "0xab5801a7"},
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"", 5, ""},
		{"abc", 0, ""},
		{"héllo wörld", 5, "héllo"},
		{"日本語のテキストです。長い", 4, "日本語の"},
		{"ééé", 2, "éé"},
	}

	for _, tt := range tests {
		result := Truncate(tt.input, tt.length)
		if result != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q; want %q", tt.input, tt.length, result, tt.expected)
		}
	}
}

func TestTruncateWidth(t *testing.T) {
	inputs := []string{
		"0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef",
		"ééééééééééééééé",
		"🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂",
	}
	for _, in := range inputs {
		if got := DisplayLen(Truncate(in, 10)); got != 10 {
			t.Errorf("DisplayLen(Truncate(%q, 10)) = %d; want 10", in, got)
		}
	}
}

func TestFormatEther(t *testing.T) {
	tests := []struct {
		wei      *uint256.Int
		decimals int
		expected string
	}{
		{uint256.NewInt(1_000_000_000_000_000_000), 4, "1.0000"},
		{uint256.NewInt(10), 4, "0.0000"},
		{uint256.MustFromDecimal("1234500000000000000000"), 2, "1,234.50"},
		{nil, 2, "0.00"},
	}

	for _, tt := range tests {
		result := FormatEther(tt.wei, tt.decimals)
		if result != tt.expected {
			t.Errorf("FormatEther(%v, %d) = %q; want %q", tt.wei, tt.decimals, result, tt.expected)
		}
	}
}

func TestAddCommas(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"1234.56", "1,234.56"},
		{"-1234", "-1,234"},
		{"", ""},
	}

	for _, tt := range tests {
		result := AddCommas(tt.input)
		if result != tt.expected {
			t.Errorf("AddCommas(%q) = %q; want %q", tt.input, result, tt.expected)
		}
	}
}

func TestFormatBigFloat(t *testing.T) {
	tests := []struct {
		input    *big.Float
		decimals int
		expected string
	}{
		{big.NewFloat(1234.5678), 2, "1,234.57"},
		{nil, 2, "0"},
	}

	for _, tt := range tests {
		result := FormatBigFloat(tt.input, tt.decimals)
		if result != tt.expected {
			t.Errorf("FormatBigFloat(%v, %d) = %q; want %q", tt.input, tt.decimals, result, tt.expected)
		}
	}
}
