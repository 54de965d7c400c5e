// The crawler package builds the link graph of a corpus, meaning a directory
// of HTML pages that link to each other. It is the only part of the project
// that touches the filesystem; the estimators consume the Graph it returns.
package crawler

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vertex-lab/pagerank/pkg/models"
)

var hrefRegexp = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

/*
Crawl() scans the specified directory (non recursively) for .html files and
returns the Graph that associates each page with its outbound set. Pages are
keyed by filename.

Links that point to the page itself, or to targets that are not pages of the
corpus, are dropped. This means every link target in the returned Graph is
itself a page of the Graph, which is what the estimators rely on.
*/
func Crawl(dir string) (models.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read the corpus directory: %w", err)
	}

	// extract the raw href targets of each page
	targets := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		contents, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read the page %s: %w", entry.Name(), err)
		}

		var links []string
		for _, match := range hrefRegexp.FindAllStringSubmatch(string(contents), -1) {
			links = append(links, match[1])
		}

		targets[entry.Name()] = links
	}

	// only include links to other pages of the corpus
	graph := models.NewGraph()
	for page := range targets {
		graph.AddPage(page)
	}

	for page, links := range targets {
		for _, link := range links {
			if link != page && graph.Contains(link) {
				graph.Links(page).Add(link)
			}
		}
	}

	return graph, nil
}
