// Package openalex contains a trimmed openalex work entity, cf.
// https://docs.openalex.org/api-entities/works
package openalex

// Work is the subset of an openalex work we care about.
type Work struct {
	ID              string `json:"id"`
	DOI             string `json:"doi"`
	Title           string `json:"title"`
	DisplayName     string `json:"display_name"`
	PublicationYear int64  `json:"publication_year"`
	PublicationDate string `json:"publication_date"`
	Type            string `json:"type"`
	Language        string `json:"language"`
	Authorships     []struct {
		Author struct {
			DisplayName string `json:"display_name"`
			ID          string `json:"id"`
		} `json:"author"`
		AuthorPosition string `json:"author_position"`
		RawAuthorName  string `json:"raw_author_name"`
	} `json:"authorships"`
	IDs struct {
		Openalex string `json:"openalex"`
		DOI      string `json:"doi"`
		PMID     string `json:"pmid"`
		PMCID    string `json:"pmcid"`
	} `json:"ids"`
	HostVenue struct {
		DisplayName string `json:"display_name"`
	} `json:"host_venue"`
	PrimaryLocation struct {
		LandingPageURL string `json:"landing_page_url"`
		Source         struct {
			DisplayName string `json:"display_name"`
		} `json:"source"`
	} `json:"primary_location"`
}

// Venue returns the best available container name.
func (w *Work) Venue() string {
	if w.HostVenue.DisplayName != "" {
		return w.HostVenue.DisplayName
	}
	return w.PrimaryLocation.Source.DisplayName
}
