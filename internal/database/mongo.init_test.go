// Package database - Test phân tích tag index trên struct model.
package database

import "testing"

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single:1,order:-1"); got != -1 {
		t.Errorf("parseOrder với order:-1 = %d, muốn -1", got)
	}
	if got := parseOrder("single:1"); got != 1 {
		t.Errorf("parseOrder mặc định = %d, muốn 1", got)
	}
	if got := parseOrder("unique"); got != 1 {
		t.Errorf("parseOrder trên tag unique = %d, muốn 1", got)
	}
}

func TestParseIndexTag_SingleWithOrder(t *testing.T) {
	entries := parseIndexTag("single:1,order:-1")
	if len(entries) != 1 {
		t.Fatalf("parseIndexTag trả về %d entry, muốn 1", len(entries))
	}
	if entries[0]["single"] != "1" {
		t.Errorf("entry thiếu single:1, có: %v", entries[0])
	}
	if entries[0]["order"] != "-1" {
		t.Errorf("entry thiếu order:-1, có: %v", entries[0])
	}
}

func TestParseIndexTag_MultipleConfigs(t *testing.T) {
	entries := parseIndexTag("single:1;unique")
	if len(entries) != 2 {
		t.Fatalf("parseIndexTag trả về %d entry, muốn 2 (tách theo dấu ';')", len(entries))
	}
	if _, ok := entries[1]["unique"]; !ok {
		t.Errorf("entry thứ hai phải là unique, có: %v", entries[1])
	}
	if entries[1]["unique"] != "" {
		t.Errorf("key không có value phải map về chuỗi rỗng, có: %q", entries[1]["unique"])
	}
}
