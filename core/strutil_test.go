package core

import "testing"

func TestItoa(t *testing.T) {
	testCases := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{255, "255"},
		{-42, "-42"},
		{1000000, "1000000"},
	}

	for _, tc := range testCases {
		if got := itoa(tc.n); got != tc.expected {
			t.Errorf("itoa(%d) = %q, expected %q", tc.n, got, tc.expected)
		}
	}
}

func TestAtoi(t *testing.T) {
	testCases := []struct {
		s        string
		expected int
		ok       bool
	}{
		{"0", 0, true},
		{"255", 255, true},
		{"-42", -42, true},
		{"+10", 10, true},
		{"", 0, false},
		{"-", 0, false},
		{"12x", 0, false},
		{"abc", 0, false},
		{"1 2", 0, false},
		{"99999999999999999999", 0, false},
		{"-99999999999999999999", 0, false},
	}

	for _, tc := range testCases {
		got, ok := atoi(tc.s)
		if ok != tc.ok || got != tc.expected {
			t.Errorf("atoi(%q) = (%d, %v), expected (%d, %v)", tc.s, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestFtoa(t *testing.T) {
	testCases := []struct {
		v        float32
		decimals int
		expected string
	}{
		{0, 2, "0.00"},
		{1234, 2, "1234.00"},
		{-200, 2, "-200.00"},
		{60.5, 2, "60.50"},
		{0.004, 2, "0.00"},
		{0.008, 2, "0.01"},
		{3.14159, 2, "3.14"},
		{42, 0, "42"},
	}

	for _, tc := range testCases {
		if got := ftoa(tc.v, tc.decimals); got != tc.expected {
			t.Errorf("ftoa(%v, %d) = %q, expected %q", tc.v, tc.decimals, got, tc.expected)
		}
	}
}
