package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sw33tLie/playscope/pkg/providers"
	"github.com/sw33tLie/playscope/pkg/providers/playstore"
	"github.com/sw33tLie/playscope/pkg/search"
)

func main() {
	// Usage: go run *.go -query "WhatsApp" -package "com.spotify.music"

	queryFlag := flag.String("query", "WhatsApp", "Search query")
	packageFlag := flag.String("package", "com.spotify.music", "Package to fetch details for")
	limitFlag := flag.Int("limit", 5, "Number of results")

	// Parse the command-line flags
	flag.Parse()

	client, err := playstore.New(playstore.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx := context.Background()

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Example 1: Searching for %s apps\n", *queryFlag)
	fmt.Println(strings.Repeat("=", 60))

	// The client can be used directly, or through a search.Searcher for
	// exact matching and multi-country runs
	results, err := client.Search(ctx, *queryFlag, *limitFlag, providers.Locale{Country: search.DefaultCountry, Lang: search.DefaultLang})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range results {
		fmt.Println("App:", r.Title)
		fmt.Println("Package:", r.AppID)
		fmt.Println("Rating:", r.ScoreString())
		fmt.Println(strings.Repeat("-", 40))
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Example 2: Getting details for %s\n", *packageFlag)
	fmt.Println(strings.Repeat("=", 60))

	d, err := search.New(client).Details(ctx, *packageFlag, "", "")
	if err != nil {
		fmt.Println(err)
		return
	}
	price := "Free"
	if !d.Free {
		price = fmt.Sprintf("%g %s", d.Price, d.Currency)
	}
	description := []rune(d.Description)
	if len(description) > 200 {
		description = description[:200]
	}

	fmt.Println("Name:", d.Title)
	fmt.Println("Developer:", d.Developer)
	fmt.Println("Rating:", d.ScoreString())
	fmt.Println("Reviews:", d.Ratings)
	fmt.Println("Installs:", d.Installs)
	fmt.Println("Category:", d.Genre)
	fmt.Println("Price:", price)
	fmt.Println("\nDescription (first 200 chars):")
	fmt.Println(string(description) + "...")
}
