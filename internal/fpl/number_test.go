package fpl

import (
	"encoding/json"
	"testing"
)

func TestStat_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `4.5`, 4.5},
		{"integer", `7`, 7},
		{"quoted number", `"6.2"`, 6.2},
		{"quoted integer", `"3"`, 3},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"garbage string", `"n/a"`, 0},
	}
	for _, tc := range cases {
		var s Stat
		if err := json.Unmarshal([]byte(tc.in), &s); err != nil {
			t.Errorf("%s: Unmarshal(%s) error: %v", tc.name, tc.in, err)
			continue
		}
		if s.Float() != tc.want {
			t.Errorf("%s: Stat = %v, want %v", tc.name, s.Float(), tc.want)
		}
	}
}

func TestStat_InStruct(t *testing.T) {
	// The FPL API serves form and ICT as quoted decimals.
	raw := `{"id":1,"web_name":"Saka","form":"7.5","ict_index":"110.3","selected_by_percent":"45.1"}`

	var e Element
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatal(err)
	}
	if e.Form.Float() != 7.5 {
		t.Errorf("Form = %v, want 7.5", e.Form.Float())
	}
	if e.ICTIndex.Float() != 110.3 {
		t.Errorf("ICTIndex = %v, want 110.3", e.ICTIndex.Float())
	}
}

func TestStat_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Stat(2.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "2.5" {
		t.Errorf("Marshal = %s, want 2.5", b)
	}
}

func TestElement_Name(t *testing.T) {
	withWeb := Element{WebName: "Saka", FirstName: "Bukayo", SecondName: "Saka"}
	if withWeb.Name() != "Saka" {
		t.Errorf("Name = %q, want web name", withWeb.Name())
	}
	noWeb := Element{FirstName: "Bukayo", SecondName: "Saka"}
	if noWeb.Name() != "Bukayo Saka" {
		t.Errorf("Name = %q, want full name fallback", noWeb.Name())
	}
}

func TestElement_Price(t *testing.T) {
	if got := (Element{NowCost: 95}).Price(); got != 9.5 {
		t.Errorf("Price = %v, want 9.5", got)
	}
}
