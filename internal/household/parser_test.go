package household

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseRecordLineQuotedFields(t *testing.T) {
	cells := parseRecordLine(`H-1,"Doe, ""Jr""",MARIA`)
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d: %v", len(cells), cells)
	}
	if cells[1] != `Doe, "Jr"` {
		t.Fatalf("quoted cell mishandled: %q", cells[1])
	}
}

func TestParseRecordLineTrimsCells(t *testing.T) {
	cells := parseRecordLine(" a , b ,c")
	if cells[0] != "a" || cells[1] != "b" || cells[2] != "c" {
		t.Fatalf("cells not trimmed: %v", cells)
	}
}

func TestFindIdxExactBeforeContains(t *testing.T) {
	headers := []string{"HHID_OLD", "HHID"}
	if idx := findIdx(headers, "HHID"); idx != 1 {
		t.Fatalf("expected exact match at 1, got %d", idx)
	}
	if idx := findIdx([]string{"THE HH_ID COLUMN"}, "HH_ID"); idx != 0 {
		t.Fatalf("expected containment match at 0, got %d", idx)
	}
	if idx := findIdx(headers, "BARANGAY"); idx != -1 {
		t.Fatalf("expected -1 for missing header, got %d", idx)
	}
}

const datasetHeader = "HH_ID,ENTRY_ID,REGION,PROVINCE,MUNICIPALITY,BARANGAY,FIRST_NAME,MIDDLE_NAME,LAST_NAME,AGE,SEX,RELATION_TO_HH_HEAD"

func datasetLine(hhid, entry, first, last, age, relation string) string {
	return fmt.Sprintf("%s,%s,V,MASBATE,MOBO,UMABAY,%s,X,%s,%s,F,%s", hhid, entry, first, last, age, relation)
}

func TestParseMembersBasic(t *testing.T) {
	text := strings.Join([]string{
		datasetHeader,
		datasetLine("H-1", "E-1", "MARIA", "SANTOS", "34", "HEAD"),
		datasetLine("H-1", "E-2", "JOSE", "SANTOS", "12", "SON"),
	}, "\n")

	members, headers, err := ParseMembers(text, nil)
	if err != nil {
		t.Fatalf("ParseMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].EntryID != "E-1" || members[0].FirstName != "MARIA" || members[0].Age != 34 {
		t.Fatalf("first member wrong: %+v", members[0])
	}
	if headers[0] != "HH_ID" || len(headers) != 12 {
		t.Fatalf("headers not preserved in source order: %v", headers)
	}
}

func TestParseMembersHeaderOrderIndependent(t *testing.T) {
	a := "HH_ID,FIRST_NAME,LAST_NAME,AGE,SEX\nH-1,MARIA,SANTOS,34,F"
	b := "SEX,AGE,LAST_NAME,FIRST_NAME,HH_ID\nF,34,SANTOS,MARIA,H-1"

	ma, _, err := ParseMembers(a, nil)
	if err != nil {
		t.Fatalf("ParseMembers failed: %v", err)
	}
	mb, _, err := ParseMembers(b, nil)
	if err != nil {
		t.Fatalf("ParseMembers failed: %v", err)
	}
	if ma[0].HHID != mb[0].HHID || ma[0].FirstName != mb[0].FirstName || ma[0].Age != mb[0].Age {
		t.Fatalf("column order changed parse result: %+v vs %+v", ma[0], mb[0])
	}
}

func TestParseMembersHeaderSynonyms(t *testing.T) {
	text := "HHID,FIRST_NAME,LAST_NAME,AGE,PHILSYS_CARD_NO\nH-9,ANA,CRUZ,20,PSN-123"
	members, _, err := ParseMembers(text, nil)
	if err != nil {
		t.Fatalf("ParseMembers failed: %v", err)
	}
	if members[0].HHID != "H-9" {
		t.Fatalf("HHID synonym not resolved: %+v", members[0])
	}
	if members[0].PCN != "PSN-123" {
		t.Fatalf("PCN synonym not resolved: %+v", members[0])
	}
}

func TestParseMembersSkipsMalformedLines(t *testing.T) {
	lines := []string{datasetHeader}
	for i := 0; i < 999; i++ {
		lines = append(lines, datasetLine(fmt.Sprintf("H-%d", i), fmt.Sprintf("E-%d", i), "A", "B", "1", "SON"))
	}
	lines = append(lines, "garbage")

	members, _, err := ParseMembers(strings.Join(lines, "\n"), nil)
	if err != nil {
		t.Fatalf("ParseMembers failed: %v", err)
	}
	if len(members) != 999 {
		t.Fatalf("expected 999 members with 1 bad line skipped, got %d", len(members))
	}
}

func TestParseMembersHeaderOnlyFatal(t *testing.T) {
	if _, _, err := ParseMembers(datasetHeader, nil); err != ErrMissingHeader {
		t.Fatalf("expected ErrMissingHeader, got %v", err)
	}
	if _, _, err := ParseMembers("", nil); err != ErrMissingHeader {
		t.Fatalf("expected ErrMissingHeader for empty input, got %v", err)
	}
}

func TestParseMembersBlankLinesAndCRLF(t *testing.T) {
	text := datasetHeader + "\r\n" +
		datasetLine("H-1", "E-1", "MARIA", "SANTOS", "34", "HEAD") + "\r\n" +
		"\r\n" +
		datasetLine("H-2", "E-2", "JOSE", "RAMOS", "40", "HEAD") + "\r\n"

	members, _, err := ParseMembers(text, nil)
	if err != nil {
		t.Fatalf("ParseMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
}

func TestParseMembersSynthesizesEntryID(t *testing.T) {
	text := "HH_ID,FIRST_NAME,LAST_NAME,AGE,SEX\n" +
		"H-1,MARIA,SANTOS,34,F\n" +
		"H-1,MARIA,SANTOS,34,F"

	members, _, err := ParseMembers(text, nil)
	if err != nil {
		t.Fatalf("ParseMembers failed: %v", err)
	}
	if members[0].EntryID == members[1].EntryID {
		t.Fatalf("duplicate rows must get distinct synthesized ids: %q", members[0].EntryID)
	}
	if !strings.HasPrefix(members[0].EntryID, "H-1-MARIA-") {
		t.Fatalf("unexpected synthesized id: %q", members[0].EntryID)
	}
}

func TestParseMembersNonNumericAge(t *testing.T) {
	text := "HH_ID,FIRST_NAME,LAST_NAME,AGE,SEX\nH-1,MARIA,SANTOS,unknown,F"
	members, _, err := ParseMembers(text, nil)
	if err != nil {
		t.Fatalf("ParseMembers failed: %v", err)
	}
	if members[0].Age != 0 {
		t.Fatalf("expected age fallback 0, got %d", members[0].Age)
	}
}

func TestParseMembersProgressMonotonic(t *testing.T) {
	lines := []string{datasetHeader}
	for i := 0; i < ParseChunkSize*2+500; i++ {
		lines = append(lines, datasetLine(fmt.Sprintf("H-%d", i), fmt.Sprintf("E-%d", i), "A", "B", "1", "SON"))
	}

	var reports []int
	_, _, err := ParseMembers(strings.Join(lines, "\n"), func(pct int) {
		reports = append(reports, pct)
	})
	if err != nil {
		t.Fatalf("ParseMembers failed: %v", err)
	}
	if len(reports) < 3 {
		t.Fatalf("expected multiple progress reports, got %v", reports)
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] < reports[i-1] {
			t.Fatalf("progress went backwards: %v", reports)
		}
	}
	if reports[len(reports)-1] != 100 {
		t.Fatalf("progress must end at 100, got %v", reports)
	}
}
