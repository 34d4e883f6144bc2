package main

import (
	"fmt"

	"gnibdocs/internal/requirements"
	"gnibdocs/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var requirementsCommand = &cli.Command{
	Name:  "requirements",
	Usage: "Print the documents required for a purpose and category",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "purpose",
			Aliases: []string{"p"},
			Usage:   "Purpose to resolve (study, work); all rows when empty",
		},
		&cli.StringFlag{
			Name:    "category",
			Aliases: []string{"c"},
			Usage:   "Category within the purpose",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	},
	Action: func(c *cli.Context) error {
		printer := pp.New()
		printer.SetColoringEnabled(!c.Bool("no-color"))

		if c.String("purpose") == "" {
			_, err := printer.Println(requirements.Rows())
			return err
		}

		purpose, ok := requirements.ParsePurpose(c.String("purpose"))
		if !ok {
			return fmt.Errorf("unknown purpose %q", c.String("purpose"))
		}

		if c.String("category") == "" {
			_, err := printer.Println(requirements.CategoriesFor(purpose))
			return err
		}

		category, ok := requirements.ParseCategory(purpose, c.String("category"))
		if !ok {
			return fmt.Errorf("category %q does not belong to purpose %q", c.String("category"), purpose)
		}

		rows := make([]types.DocumentRequirement, 0)
		for _, row := range requirements.Rows() {
			if row.Purpose == purpose && row.Category == category {
				rows = append(rows, row)
			}
		}

		_, err := printer.Println(rows)
		return err
	},
}
