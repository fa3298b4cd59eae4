package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsimek/newsgrab"
)

// Run executes the archive command: it imports a crawl output file into
// the SQLite archive. Articles whose URL is already archived are
// skipped, so re-importing the same file is harmless.
func (c *ArchiveCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var articles []*newsgrab.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s is not a crawl output file: %v\n", c.Input, err)
		return err
	}

	var imported, skipped int
	for _, article := range articles {
		err := deps.Articles.CreateArticle(deps.Ctx, article)
		switch {
		case err == nil:
			imported++
		case newsgrab.ErrorCode(err) == newsgrab.ECONFLICT:
			skipped++
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsgrab.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Imported %d articles (%d already archived)\n", imported, skipped)
	return nil
}
