package feeds

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/miku/bibmerge"
	log "github.com/sirupsen/logrus"
)

// WordPressHarvester scrapes post titles and links from a wordpress site's
// archive pages. Blogs and Q&A style posts carry no identifiers at all, so
// these records always go through the fuzzy title path downstream.
type WordPressHarvester struct {
	Client    Doer
	BaseURL   string
	UserAgent string
	// MaxPages caps pagination, zero means no cap.
	MaxPages int
}

// Post is one scraped archive entry.
type Post struct {
	Title string
	URL   string
	Date  string
}

// Posts walks the paged archive, collecting entries until an empty page, a
// missing next page or the page cap.
func (h *WordPressHarvester) Posts() ([]Post, error) {
	var posts []Post
	for page := 1; h.MaxPages == 0 || page <= h.MaxPages; page++ {
		pageURL := strings.TrimRight(h.BaseURL, "/") + "/"
		if page > 1 {
			pageURL = fmt.Sprintf("%spage/%d/", pageURL, page)
		}
		batch, err := h.scrape(pageURL)
		if err != nil {
			// A 404 on page N just means we walked past the last page.
			if page > 1 {
				break
			}
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		posts = append(posts, batch...)
		log.WithFields(log.Fields{"source": "wordpress", "page": page, "posts": len(posts)}).Debug("page done")
	}
	return posts, nil
}

func (h *WordPressHarvester) scrape(pageURL string) ([]Post, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	ua := h.UserAgent
	if ua == "" {
		ua = bibmerge.UserAgent
	}
	req.Header.Set("User-Agent", ua)
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: status %d", pageURL, resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	var posts []Post
	doc.Find("article").Each(func(i int, s *goquery.Selection) {
		link := s.Find(".entry-title a, h2 a, h1 a").First()
		href, _ := link.Attr("href")
		title := strings.TrimSpace(link.Text())
		if title == "" || href == "" {
			return
		}
		date := strings.TrimSpace(s.Find("time").First().AttrOr("datetime", ""))
		posts = append(posts, Post{Title: title, URL: href, Date: date})
	})
	return posts, nil
}
