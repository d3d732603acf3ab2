package task

import (
	"encoding/json"
	"testing"
)

func TestIDUnmarshalJSON(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "string", input: `"alpha"`, want: StringID("alpha")},
		{name: "numeric string", input: `"7"`, want: StringID("7")},
		{name: "integer", input: `7`, want: IntID(7)},
		{name: "negative integer", input: `-3`, want: IntID(-3)},
		{name: "null", input: `null`, want: ID{}},
		{name: "float", input: `1.5`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tc.input), &id)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if id != tc.want {
				t.Errorf("got %#v, want %#v", id, tc.want)
			}
		})
	}
}

func TestIDMarshalPreservesForm(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		id   ID
		want string
	}{
		{IntID(42), `42`},
		{StringID("42"), `"42"`},
		{StringID("beta"), `"beta"`},
	} {
		data, err := json.Marshal(tc.id)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != tc.want {
			t.Errorf("marshal %v: got %s, want %s", tc.id, data, tc.want)
		}
	}
}

func TestIDLess(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		a, b ID
		want bool
	}{
		{name: "numeric compares numerically", a: IntID(9), b: IntID(10), want: true},
		{name: "numeric reverse", a: IntID(10), b: IntID(9), want: false},
		{name: "lexical strings", a: StringID("10"), b: StringID("9"), want: true},
		{name: "mixed falls back to lexical", a: IntID(10), b: StringID("9"), want: true},
		{name: "equal", a: StringID("a"), b: StringID("a"), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Less(tc.b); got != tc.want {
				t.Errorf("Less(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestIDCanonicalForm(t *testing.T) {
	t.Parallel()
	// Integer 7 and string "7" share a canonical form so dependency
	// references resolve across the two spellings.
	if IntID(7).String() != StringID("7").String() {
		t.Error("canonical forms of 7 and \"7\" should match")
	}
}

func TestFromAny(t *testing.T) {
	t.Parallel()
	if id, err := FromAny(int64(5)); err != nil || id != IntID(5) {
		t.Errorf("FromAny(int64) = %v, %v", id, err)
	}
	if id, err := FromAny("x"); err != nil || id != StringID("x") {
		t.Errorf("FromAny(string) = %v, %v", id, err)
	}
	if _, err := FromAny(1.25); err == nil {
		t.Error("FromAny should reject non-integer floats")
	}
	if _, err := FromAny([]string{"a"}); err == nil {
		t.Error("FromAny should reject non-scalar values")
	}
}
