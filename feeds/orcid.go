package feeds

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/miku/bibmerge/schema/orcid"
)

const DefaultOrcidEndpoint = "https://pub.orcid.org/v3.0"

// ORCIDHarvester fetches work summaries from the ORCID public API: a profile
// search, then the work list per profile.
type ORCIDHarvester struct {
	Client      Doer
	ApiEndpoint string
	UserAgent   string
	// MaxProfiles caps the number of profiles we pull works for; search
	// results for common names can be noisy.
	MaxProfiles int
}

// ProfileWorks groups harvested work groups with their profile, since put
// codes are only meaningful per profile.
type ProfileWorks struct {
	OrcidID string
	Groups  []orcid.WorkGroup
}

func (h *ORCIDHarvester) endpoint() string {
	if h.ApiEndpoint == "" {
		return DefaultOrcidEndpoint
	}
	return strings.TrimRight(h.ApiEndpoint, "/")
}

func (h *ORCIDHarvester) maxProfiles() int {
	if h.MaxProfiles == 0 {
		return 3
	}
	return h.MaxProfiles
}

// Search returns ORCID iDs matching a query like
// `family-name:Eppley AND given-names:Barry`.
func (h *ORCIDHarvester) Search(query string) ([]string, error) {
	vs := url.Values{}
	vs.Set("q", query)
	var result orcid.SearchResult
	err := getJSON(h.Client, h.UserAgent, "application/vnd.orcid+json",
		h.endpoint()+"/search/", vs, &result)
	if err != nil {
		return nil, fmt.Errorf("orcid search: %w", err)
	}
	var ids []string
	for _, r := range result.Result {
		if r.OrcidIdentifier.Path != "" {
			ids = append(ids, r.OrcidIdentifier.Path)
		}
	}
	return ids, nil
}

// Works fetches the work summaries of one profile.
func (h *ORCIDHarvester) Works(orcidID string) ([]orcid.WorkGroup, error) {
	var works orcid.Works
	err := getJSON(h.Client, h.UserAgent, "application/vnd.orcid+json",
		h.endpoint()+"/"+orcidID+"/works", nil, &works)
	if err != nil {
		return nil, fmt.Errorf("orcid works: %w", err)
	}
	return works.Group, nil
}

// Harvest searches profiles and collects their works, up to MaxProfiles.
func (h *ORCIDHarvester) Harvest(query string) ([]ProfileWorks, error) {
	ids, err := h.Search(query)
	if err != nil {
		return nil, err
	}
	if len(ids) > h.maxProfiles() {
		ids = ids[:h.maxProfiles()]
	}
	var result []ProfileWorks
	for _, id := range ids {
		groups, err := h.Works(id)
		if err != nil {
			return nil, err
		}
		result = append(result, ProfileWorks{OrcidID: id, Groups: groups})
	}
	return result, nil
}
