package jsonutil

import (
	"encoding/json"
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

// Any well-formed object embedded in a tagged fence inside arbitrary prose
// must round-trip exactly.
func TestExtractObject_FencedRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keyGen := rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9]{0,11}`)
		// No backticks (would open a fence of their own) and no commas (the
		// repair pass is allowed to eat ",}" even inside string values).
		valGen := rapid.StringMatching(`[a-zA-Z0-9 .!?']{0,24}`)
		obj := rapid.MapOfN(keyGen, valGen, 1, 8).Draw(t, "obj")

		payload := map[string]any{}
		for k, v := range obj {
			payload[k] = v
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		prose := rapid.StringMatching(`[a-zA-Z0-9 .,!]{0,40}`)
		text := prose.Draw(t, "before") + "\n```json\n" + string(encoded) + "\n```\n" + prose.Draw(t, "after")

		got := ExtractObject(text)
		if got == nil {
			t.Fatalf("no object recovered from %q", text)
		}
		if !reflect.DeepEqual(got, payload) {
			t.Fatalf("round trip mismatch: got=%v want=%v", got, payload)
		}
	})
}

// Repair must never break already-valid JSON objects without string values
// that could hide commas.
func TestRepair_PreservesValidStructure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nums := rapid.SliceOfN(rapid.Int64Range(0, 1000), 0, 6).Draw(t, "nums")
		payload := map[string]any{"values": nums}
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		repaired := Repair(string(encoded))
		var back map[string]any
		if err := json.Unmarshal([]byte(repaired), &back); err != nil {
			t.Fatalf("repair broke valid JSON: %q -> %q: %v", encoded, repaired, err)
		}
	})
}
