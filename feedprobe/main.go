// feedprobe downloads one live schedule of classes feed and prints how its lines
// were classified. Handy when the registrar changes the layout.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"socctl/pkg/scraper"
	"socctl/pkg/soc"
)

// unknownSamples is how many unrecognised lines are echoed
const unknownSamples = 10

func main() {
	season := soc.Fall
	if len(os.Args) > 1 {
		s, err := soc.ParseSeason(os.Args[1])
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		season = s
	}

	fmt.Printf("Fetching the live %s feed...\n", season)

	client := scraper.NewClient(nil).WithoutCache()
	data, err := client.FetchRaw(context.Background(), season)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	body, year, err := scraper.SplitHeader(string(data))
	if err != nil {
		fmt.Println("Error reading banner:", err)
		os.Exit(1)
	}

	lines := soc.NewClassifier(nil).ClassifyText(body)

	counts := make(map[soc.LineKind]int)
	var unknown []string
	for _, l := range lines {
		counts[l.Kind]++
		if l.Kind == soc.Unknown && len(unknown) < unknownSamples {
			unknown = append(unknown, l.Text)
		}
	}

	kinds := make([]soc.LineKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Printf("\n--- 📄 %s %s: %d lines ---\n", season, year, len(lines))
	for _, k := range kinds {
		fmt.Printf("%-22s %6d\n", k, counts[k])
	}

	if len(unknown) > 0 {
		fmt.Println("\nUnrecognised lines:")
		for _, raw := range unknown {
			fmt.Printf("  %q\n", raw)
		}
	}
}
