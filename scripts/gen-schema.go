//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/civicdata/roster/pkg/schema"
)

func main() {
	person, err := schema.GeneratePersonJSONSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("schemas/person-v1.json", person, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("wrote schemas/person-v1.json")

	org, err := schema.GenerateOrganizationJSONSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("schemas/organization-v1.json", org, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("wrote schemas/organization-v1.json")
}
