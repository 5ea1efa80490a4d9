package huffcode

import (
	"errors"
	"testing"
)

func mustParseCode(t *testing.T, str string) Code {
	t.Helper()
	hc, err := ParseCode(str)
	if err != nil {
		t.Fatalf("ParseCode(%q) failed: %v", str, err)
	}
	return hc
}

func TestNewCodeTable(t *testing.T) {
	table, err := NewCodeTable(map[Symbol]Code{
		'x': mustParseCode(t, "0"),
		'y': mustParseCode(t, "10"),
		'z': mustParseCode(t, "110"),
	})
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	if table.Len() != 3 || table.MinSize() != 1 || table.MaxSize() != 3 {
		t.Errorf("wrong table: %s", table)
	}
	if table.IsComplete() {
		t.Errorf("table leaves \"111\" unassigned but reports complete")
	}

	output, err := EncodeSymbols(table, SymbolsFromString("zyx"))
	if err != nil {
		t.Fatalf("EncodeSymbols failed: %v", err)
	}
	if expect, actual := "110100", output.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestNewCodeTable_Errors(t *testing.T) {
	type testRow struct {
		name   string
		codes  map[Symbol]string
		expect error
	}

	testData := [...]testRow{
		{name: "empty-table", codes: map[Symbol]string{}, expect: ErrEmptyAlphabet},
		{name: "empty-code", codes: map[Symbol]string{'a': "", 'b': "1"}, expect: ErrInvalidCode},
		{name: "negative-symbol", codes: map[Symbol]string{-5: "0"}, expect: ErrInvalidCode},
		{name: "duplicate", codes: map[Symbol]string{'a': "01", 'b': "01"}, expect: ErrNotPrefixFree},
		{name: "prefix", codes: map[Symbol]string{'a': "0", 'b': "10", 'c': "101"}, expect: ErrNotPrefixFree},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			codes := make(map[Symbol]Code, len(row.codes))
			for symbol, str := range row.codes {
				codes[symbol] = mustParseCode(t, str)
			}
			_, err := NewCodeTable(codes)
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
		})
	}
}

func TestCodeTable_Validate_Conflict(t *testing.T) {
	table := makeCodeTable(map[Symbol]Code{
		'a': mustParseCode(t, "0"),
		'b': mustParseCode(t, "10"),
		'c': mustParseCode(t, "101"),
	})

	err := table.Validate()
	var conflict *PrefixConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *PrefixConflictError, got %v", err)
	}
	if conflict.Prefix != 'b' || conflict.Other != 'c' {
		t.Errorf("expected conflict between 'b' and 'c', got %s and %s", conflict.Prefix, conflict.Other)
	}

	expectMessage := "code \"10\" for symbol 'b' is a prefix of code \"101\" for symbol 'c'"
	if actual := err.Error(); actual != expectMessage {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectMessage, actual)
	}
}

func TestCodeTable_IsComplete(t *testing.T) {
	type testRow struct {
		name   string
		codes  []string
		expect bool
	}

	testData := [...]testRow{
		{name: "single", codes: []string{"0"}, expect: false},
		{name: "pair", codes: []string{"0", "1"}, expect: true},
		{name: "skewed", codes: []string{"0", "10", "110", "111"}, expect: true},
		{name: "balanced", codes: []string{"00", "01", "10", "11"}, expect: true},
		{name: "gap", codes: []string{"00", "01", "10"}, expect: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			codes := make(map[Symbol]Code, len(row.codes))
			for index, str := range row.codes {
				codes[Symbol('a'+index)] = mustParseCode(t, str)
			}
			table, err := NewCodeTable(codes)
			if err != nil {
				t.Fatalf("NewCodeTable failed: %v", err)
			}
			if actual := table.IsComplete(); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
