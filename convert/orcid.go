package convert

import (
	"strconv"

	"github.com/miku/bibmerge/merge"
	"github.com/miku/bibmerge/schema/orcid"
)

// OrcidWorkGroupToRawRecord converts an ORCID work group into a raw record,
// using the first (preferred) summary of the group. The put code only
// identifies the work within one profile, which is why it ranks below doi and
// pmid during resolution.
func OrcidWorkGroupToRawRecord(orcidID string, group *orcid.WorkGroup) (merge.RawRecord, error) {
	var rec merge.RawRecord
	if len(group.WorkSummary) == 0 {
		return rec, ErrSkipNoContent
	}
	ws := group.WorkSummary[0]
	rec.Source = merge.SourceORCID
	rec.Title = cleanTitle(ws.Title.Title.Value)
	rec.Journal = ws.JournalTitle.Value
	rec.Year = ws.PublicationDate.Year.Value
	rec.Type = ws.Type
	rec.DOI = ws.ExternalId("doi")
	rec.PMID = ws.ExternalId("pmid")
	if ws.PutCode != 0 {
		rec.PutCode = strconv.FormatInt(ws.PutCode, 10)
	}
	switch {
	case ws.URL.Value != "":
		rec.URL = ws.URL.Value
	case rec.PutCode != "" && orcidID != "":
		rec.URL = "https://orcid.org/" + orcidID + "/work/" + rec.PutCode
	}
	return rec, nil
}
