// Package pubmed contains a trimmed version of the EFetch XML response, cf.
// https://www.nlm.nih.gov/bsd/licensee/elements_descriptions.html
package pubmed

import "encoding/xml"

// ArticleSet is the root element of an EFetch pubmed XML response.
type ArticleSet struct {
	XMLName xml.Name  `xml:"PubmedArticleSet"`
	Article []Article `xml:"PubmedArticle"`
}

type Article struct {
	MedlineCitation MedlineCitation `xml:"MedlineCitation"`
	PubmedData      PubmedData      `xml:"PubmedData"`
}

type MedlineCitation struct {
	PMID    string `xml:"PMID"`
	Article struct {
		ArticleTitle string `xml:"ArticleTitle"`
		Journal      struct {
			Title           string `xml:"Title"`
			ISOAbbreviation string `xml:"ISOAbbreviation"`
			JournalIssue    struct {
				PubDate struct {
					Year        string `xml:"Year"`
					MedlineDate string `xml:"MedlineDate"`
				} `xml:"PubDate"`
			} `xml:"JournalIssue"`
		} `xml:"Journal"`
		AuthorList struct {
			Author []Author `xml:"Author"`
		} `xml:"AuthorList"`
	} `xml:"Article"`
}

type Author struct {
	LastName       string `xml:"LastName"`
	ForeName       string `xml:"ForeName"`
	Initials       string `xml:"Initials"`
	CollectiveName string `xml:"CollectiveName"`
}

type PubmedData struct {
	ArticleIdList struct {
		ArticleId []ArticleId `xml:"ArticleId"`
	} `xml:"ArticleIdList"`
}

// ArticleId carries one external identifier, e.g. doi, pubmed, pmc.
type ArticleId struct {
	IdType string `xml:"IdType,attr"`
	Text   string `xml:",chardata"`
}

// Year returns the publication year, falling back to the start of a medline
// date range like "1998 Nov-Dec".
func (a *Article) Year() string {
	pd := a.MedlineCitation.Article.Journal.JournalIssue.PubDate
	if pd.Year != "" {
		return pd.Year
	}
	if len(pd.MedlineDate) >= 4 {
		return pd.MedlineDate[:4]
	}
	return ""
}
