package household

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// ParseChunkSize bounds how many lines are parsed between progress
	// reports so a multi-hundred-thousand-row import stays observable.
	ParseChunkSize = 2000

	// minViableCells is the floor below which a data line is treated as
	// truncated and skipped.
	minViableCells = 5
)

var ErrMissingHeader = errors.New("file empty or missing headers")

// parseRecordLine splits one CSV record with correct handling of quoted
// fields: embedded commas stay inside the cell and a doubled quote ("")
// inside a quoted field is a literal quote. Cells come back trimmed.
func parseRecordLine(text string) []string {
	var result []string
	var cell strings.Builder
	inQuotes := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteByte(ch)
		}
	}
	result = append(result, strings.TrimSpace(cell.String()))
	return result
}

// columnMap holds the resolved header index of every semantic field, -1 when
// the source file has no matching column. Resolution happens once per import;
// row parsing is plain indexed access.
type columnMap struct {
	region, province, muni, brgy       int
	hhid, entryID                      int
	first, middle, last, ext           int
	bday, age, sex                     int
	clientStatus, csCategory, memStat  int
	relation, civil, grantee, set      int
	solo, ip, pcn, pcnRem              int
	preg, lmp, healthMon, healthFac    int
	healthFacStat, healthReason        int
	healthRem, disability, childBene   int
	grade, strand, track, educMon      int
	attend, school, educReason, educRem int
	lrn, lrnRem, ageEduc               int
}

// findIdx resolves a semantic field against normalized header cells: exact
// match against the synonym list first, substring containment as fallback.
// Tolerates exports that rename or reorder columns (e.g. HH_ID vs HHID).
func findIdx(headers []string, keywords ...string) int {
	for i, h := range headers {
		for _, k := range keywords {
			if h == k {
				return i
			}
		}
	}
	for i, h := range headers {
		for _, k := range keywords {
			if strings.Contains(h, k) {
				return i
			}
		}
	}
	return -1
}

func resolveColumns(headers []string) columnMap {
	norm := make([]string, len(headers))
	for i, h := range headers {
		norm[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	return columnMap{
		region:   findIdx(norm, "REGION"),
		province: findIdx(norm, "PROVINCE"),
		muni:     findIdx(norm, "MUNICIPALITY"),
		brgy:     findIdx(norm, "BARANGAY"),

		hhid:    findIdx(norm, "HH_ID", "HHID"),
		entryID: findIdx(norm, "ENTRY_ID"),

		first:  findIdx(norm, "FIRST_NAME"),
		middle: findIdx(norm, "MIDDLE_NAME"),
		last:   findIdx(norm, "LAST_NAME"),
		ext:    findIdx(norm, "EXT_NAME"),

		bday: findIdx(norm, "BIRTHDAY"),
		age:  findIdx(norm, "AGE"),
		sex:  findIdx(norm, "SEX"),

		clientStatus: findIdx(norm, "CLIENT_STATUS"),
		csCategory:   findIdx(norm, "CS_CATEGORY"),
		memStat:      findIdx(norm, "MEMBER_STATUS"),

		relation: findIdx(norm, "RELATION_TO_HH_HEAD"),
		civil:    findIdx(norm, "CIVIL_STATUS"),
		grantee:  findIdx(norm, "GRANTEE"),
		set:      findIdx(norm, "HH_SET"),
		solo:     findIdx(norm, "SOLO_PARENT"),

		ip:     findIdx(norm, "IP_AFFILIATION"),
		pcn:    findIdx(norm, "PCN", "PHILSYS_CARD_NO"),
		pcnRem: findIdx(norm, "PCN_REMARKS"),

		preg:          findIdx(norm, "PREGNANCY_STATUS"),
		lmp:           findIdx(norm, "LMP"),
		healthMon:     findIdx(norm, "HEALTH_MONITORED"),
		healthFac:     findIdx(norm, "HEALTH_FACILITY"),
		healthFacStat: findIdx(norm, "HEALTH_FACILITY_STATUS"),
		healthReason:  findIdx(norm, "REASON_FOR_NOT_ATTENDING_HEALTH"),
		healthRem:     findIdx(norm, "REASON_HEALTH_REMARKS"),
		disability:    findIdx(norm, "DISABILITY_TYPES"),
		childBene:     findIdx(norm, "CHILD_BENE"),

		grade:      findIdx(norm, "GRADE_LEVEL"),
		strand:     findIdx(norm, "SHS_STRAND"),
		track:      findIdx(norm, "SHS_TRACK"),
		educMon:    findIdx(norm, "EDUC_MONIT"),
		attend:     findIdx(norm, "ATTEND_SCHOOL"),
		school:     findIdx(norm, "SCHOOL_NAME"),
		educReason: findIdx(norm, "REASON_FOR_NOT_ATTENDING_SCHOOL"),
		educRem:    findIdx(norm, "REASON_EDUC_REMARKS"),
		lrn:        findIdx(norm, "LRN", "LEARNER'S ID", "LEARNER_ID"),
		lrnRem:     findIdx(norm, "LRN_REMARKS"),
		ageEduc:    findIdx(norm, "AGE_ON_EDUC"),
	}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// ParseMembers converts a decoded household-profile export into member
// records. Lines are consumed in chunks of ParseChunkSize with onProgress
// called after each chunk (0-100, non-decreasing, ends at 100). Malformed
// lines are skipped, never fatal; a missing header row or a file with fewer
// than two lines is.
//
// The returned headers are the source header cells in file order, for the
// dataset snapshot.
func ParseMembers(text string, onProgress func(pct int)) ([]Member, []string, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, nil, ErrMissingHeader
	}

	headers := parseRecordLine(lines[0])
	mapping := resolveColumns(headers)

	totalLines := len(lines)
	members := make([]Member, 0, totalLines-1)

	for base := 1; base < totalLines; base += ParseChunkSize {
		end := base + ParseChunkSize
		if end > totalLines {
			end = totalLines
		}

		for i := base; i < end; i++ {
			line := lines[i]
			if strings.TrimSpace(line) == "" {
				continue
			}

			cells := parseRecordLine(line)
			if len(cells) < minViableCells {
				continue
			}

			getVal := func(idx int) string {
				if idx >= 0 && idx < len(cells) {
					return cells[idx]
				}
				return ""
			}

			age, err := strconv.Atoi(getVal(mapping.age))
			if err != nil {
				age = 0
			}

			m := Member{
				HHID:    getVal(mapping.hhid),
				EntryID: getVal(mapping.entryID),

				Region:       getVal(mapping.region),
				Province:     getVal(mapping.province),
				Municipality: getVal(mapping.muni),
				Barangay:     getVal(mapping.brgy),

				FirstName:  getVal(mapping.first),
				MiddleName: getVal(mapping.middle),
				LastName:   getVal(mapping.last),
				ExtName:    getVal(mapping.ext),

				Birthday: getVal(mapping.bday),
				Age:      age,
				Sex:      getVal(mapping.sex),

				ClientStatus: getVal(mapping.clientStatus),
				CSCategory:   getVal(mapping.csCategory),
				MemberStatus: getVal(mapping.memStat),
				Relationship: getVal(mapping.relation),
				CivilStatus:  getVal(mapping.civil),

				IsGrantee:  getVal(mapping.grantee),
				HHSet:      getVal(mapping.set),
				SoloParent: getVal(mapping.solo),

				IPAffiliation: getVal(mapping.ip),
				PCN:           getVal(mapping.pcn),
				PCNRemarks:    getVal(mapping.pcnRem),

				PregnancyStatus:          getVal(mapping.preg),
				LMP:                      getVal(mapping.lmp),
				HealthMonitored:          getVal(mapping.healthMon),
				HealthFacility:           getVal(mapping.healthFac),
				HealthFacilityStatus:     getVal(mapping.healthFacStat),
				ReasonNotAttendingHealth: getVal(mapping.healthReason),
				HealthRemarks:            getVal(mapping.healthRem),
				Disability:               getVal(mapping.disability),
				ChildBene:                getVal(mapping.childBene),

				AgeOnEduc:                getVal(mapping.ageEduc),
				GradeLevel:               getVal(mapping.grade),
				SHSStrand:                getVal(mapping.strand),
				SHSTrack:                 getVal(mapping.track),
				EducMonit:                getVal(mapping.educMon),
				AttendingSchool:          getVal(mapping.attend),
				SchoolName:               getVal(mapping.school),
				ReasonNotAttendingSchool: getVal(mapping.educReason),
				EducRemarks:              getVal(mapping.educRem),
				LRN:                      getVal(mapping.lrn),
				LRNRemarks:               getVal(mapping.lrnRem),
			}

			// Synthesize the primary key when the source omits it. The
			// absolute row ordinal keeps duplicates of the same name apart.
			if m.EntryID == "" {
				m.EntryID = m.HHID + "-" + m.FirstName + "-" + strconv.Itoa(len(members))
			}

			members = append(members, m)
		}

		if onProgress != nil {
			onProgress(int(float64(end) / float64(totalLines) * 100))
		}
	}

	if onProgress != nil {
		onProgress(100)
	}

	return members, headers, nil
}
