package crawler

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeCorpus() writes the specified pages as files in a temporary directory
// and returns its path.
func writeCorpus(t *testing.T, pages map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for name, contents := range pages {
		page := "<html><body>" + contents + "</body></html>"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(page), 0644); err != nil {
			t.Fatalf("failed to write the page %v: %v", name, err)
		}
	}

	return dir
}

func TestCrawl(t *testing.T) {
	t.Run("negative Crawl, missing directory", func(t *testing.T) {
		if _, err := Crawl("not-a-directory"); err == nil {
			t.Errorf("Crawl(): expected an error, got nil")
		}
	})

	t.Run("positive Crawl, empty directory", func(t *testing.T) {
		graph, err := Crawl(t.TempDir())
		if err != nil {
			t.Fatalf("Crawl(): expected nil, got %v", err)
		}

		if len(graph) != 0 {
			t.Errorf("Crawl(): expected an empty graph, got %v", graph)
		}
	})

	t.Run("positive Crawl", func(t *testing.T) {
		dir := writeCorpus(t, map[string]string{
			"1.html": `<a href="2.html">two</a> <a class="x" href="3.html">three</a>`,
			"2.html": `<a href="3.html">three</a>`,
			"3.html": `<a href="2.html">two</a>`,
			"4.html": `<a href="4.html">self</a> <a href="https://example.com/">out</a>`,
			"notes":  `<a href="1.html">not an html file</a>`,
		})

		graph, err := Crawl(dir)
		if err != nil {
			t.Fatalf("Crawl(): expected nil, got %v", err)
		}

		expectedPages := []string{"1.html", "2.html", "3.html", "4.html"}
		if pages := graph.Pages(); !reflect.DeepEqual(pages, expectedPages) {
			t.Fatalf("Crawl(): expected pages %v, got %v", expectedPages, pages)
		}

		expectedLinks := map[string][]string{
			"1.html": {"2.html", "3.html"},
			"2.html": {"3.html"},
			"3.html": {"2.html"},
			"4.html": {}, // self links and external links are dropped
		}

		for page, expected := range expectedLinks {
			links := graph.Links(page).ToSlice()
			if len(links) != len(expected) {
				t.Errorf("Crawl(): page %v: expected links %v, got %v", page, expected, links)
				continue
			}

			for _, link := range expected {
				if !graph.Links(page).Contains(link) {
					t.Errorf("Crawl(): page %v: expected link %v in %v", page, link, links)
				}
			}
		}
	})
}
