package cmd

import (
	"fmt"
	"sort"
)

// List shows the entries of a vault, grouped by category.
func List(path string) {
	app := NewApp()
	defer app.Close()

	app.OpenVault(path)

	entries := app.Service.Entries()
	if len(entries) == 0 {
		fmt.Println("Vault is empty")
		return
	}

	byCategory := make(map[string][]string)
	for _, e := range entries {
		cat := e.Category
		if cat == "" {
			cat = "(uncategorized)"
		}
		line := e.Title
		if e.Username != "" {
			line += "  (" + e.Username + ")"
		}
		byCategory[cat] = append(byCategory[cat], line)
	}

	for _, c := range app.Service.Categories() {
		printCategory(c.Name, byCategory)
	}
	printCategory("(uncategorized)", byCategory)
	// Categories referenced by entries but missing from the category list
	// still get shown.
	rest := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		rest = append(rest, cat)
	}
	sort.Strings(rest)
	for _, cat := range rest {
		printCategory(cat, byCategory)
	}
}

func printCategory(name string, byCategory map[string][]string) {
	lines, ok := byCategory[name]
	if !ok {
		return
	}
	delete(byCategory, name)
	fmt.Printf("%s:\n", name)
	for _, l := range lines {
		fmt.Printf("  %s\n", l)
	}
}
