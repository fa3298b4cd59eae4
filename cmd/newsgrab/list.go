package main

import (
	"fmt"

	"github.com/jsimek/newsgrab"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := newsgrab.ArticleFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Host != "" {
		filter.SourceHost = &c.Host
	}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsgrab.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'newsgrab archive' to import a crawl.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %-12s  %s\n",
			a.PublishedAt.Format("2006-01-02"), a.Category, a.URL)
	}

	return nil
}
