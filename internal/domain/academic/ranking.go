package academic

import (
	"strings"

	"github.com/samber/lo"
)

// Credential levels. Free-text credential phrases map onto these by
// case-insensitive substring match; unmatched text stays at levelNone and is
// never selected.
const (
	levelNone = iota
	levelAssociate
	levelBachelor
	levelMaster
	levelDoctoral
)

var credentialKeywords = map[int][]string{
	levelDoctoral:  {"doctor", "phd", "ph.d", "d.phil"},
	levelMaster:    {"master", "msc", "m.sc", "mba", "m.eng", "meng"},
	levelBachelor:  {"bachelor", "baccalaureate", "bsc", "b.sc", "b.eng", "beng"},
	levelAssociate: {"associate", "diploma", "certificate"},
}

// credentialLevel returns the highest hierarchy level any substring of the
// credential text matches. A phrase may satisfy multiple keys; the highest
// wins.
func credentialLevel(credential string) int {
	text := strings.ToLower(credential)
	best := levelNone
	for level, keywords := range credentialKeywords {
		if level <= best {
			continue
		}
		if lo.SomeBy(keywords, func(kw string) bool { return strings.Contains(text, kw) }) {
			best = level
		}
	}
	return best
}

// RankCredentials derives the single best-credential summary from an
// applicant's institution history. Pure and deterministic: records are
// scanned in input order and ties between equal-level credentials resolve to
// the later conferral date, then to the dated record over the undated one,
// then to the earlier-scanned record. Empty input, all-null credentials and
// absent dates all degrade to the all-nil summary.
func RankCredentials(records []*AcademicRecord) CredentialSummary {
	bestLevel := levelNone
	var selected *AcademicRecord

	for _, record := range records {
		if record == nil || record.CredentialReceive == nil || *record.CredentialReceive == "" {
			continue
		}

		level := credentialLevel(*record.CredentialReceive)
		if level == levelNone {
			continue
		}

		switch {
		case level > bestLevel:
			bestLevel = level
			selected = record
		case level == bestLevel && supersedes(record, selected):
			selected = record
		}
	}

	if selected == nil {
		return CredentialSummary{}
	}
	return CredentialSummary{
		HighestDegree: selected.CredentialReceive,
		DegreeArea:    selected.ProgramStudy,
		GPA:           selected.GPA,
	}
}

// supersedes decides whether an equal-level candidate replaces the already
// selected record. With no conferral date on either side the earlier-scanned
// record is kept: the tie resolves by input order, not by overwrite.
func supersedes(candidate, selected *AcademicRecord) bool {
	if candidate.DateConfer == nil {
		return false
	}
	if selected.DateConfer == nil {
		return true
	}
	return candidate.DateConfer.After(*selected.DateConfer)
}
