package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harunmuya/gs-app/internal/extractor"
	"github.com/harunmuya/gs-app/internal/matching"
)

var parseCmd = &cobra.Command{
	Use:   "parse <post-id>",
	Short: "Parse a single post and show how it scores",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid post id %q", args[0])
	}
	viewer, err := viewerFromFlags(cmd)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	post, err := client.GetPost(cmd.Context(), id)
	if err != nil {
		return err
	}
	p := extractor.New().Parse(post)
	terms := matching.NewScorer(matching.DefaultConfig(), nil).Terms(p, viewer)

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, map[string]any{
			"profile":   p,
			"breakdown": terms,
		})
	}

	age := "unknown"
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}
	fmt.Fprintf(out, "Name:      %s\n", p.Name)
	fmt.Fprintf(out, "Age:       %s\n", age)
	fmt.Fprintf(out, "Location:  %s (%.4f, %.4f)\n", p.Location, p.Coordinates.Lat, p.Coordinates.Lng)
	fmt.Fprintf(out, "Published: %s (%d days)\n", p.PublishedAt.Format("2006-01-02"), p.DaysSincePublication)
	fmt.Fprintf(out, "Views:     %d  Comments: %d\n", p.ViewCount, p.CommentCount)
	fmt.Fprintf(out, "Image:     %s\n", p.ImageURL)
	fmt.Fprintf(out, "Bio:       %s\n\n", p.Bio)
	fmt.Fprintf(out, "Score %d = base %d + proximity %d + recency %d + engagement %d + completeness %d (before jitter)\n",
		terms.Final, terms.Base, terms.Proximity, terms.Recency, terms.Engagement, terms.Completeness)
	return nil
}
