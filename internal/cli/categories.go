package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:    "categories",
		Aliases: []string{"cat"},
		Usage:   "manage category rules",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list categories in priority order",
				Action: func(c *cli.Context) error {
					e, err := setup(c)
					if err != nil {
						return err
					}
					defer e.close()

					rules, err := e.Service.Categories.List(c.Context)
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "#\tNAME\tKEYWORDS")
					for i, rule := range rules {
						fmt.Fprintf(w, "%d\t%s\t%s\n", i, rule.Name, strings.Join(rule.Keywords, ", "))
					}
					return w.Flush()
				},
			},
			{
				Name:      "add",
				Usage:     "append a category at the lowest priority",
				ArgsUsage: "NAME [KEYWORD...]",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return cli.Exit("add needs a category name", 2)
					}
					return withEnv(c, func(e *env) error {
						return e.Service.Categories.Add(c.Context, c.Args().First(), c.Args().Tail())
					})
				},
			},
			{
				Name:      "remove",
				Usage:     "remove a category",
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("remove needs exactly one category name", 2)
					}
					return withEnv(c, func(e *env) error {
						return e.Service.Categories.Remove(c.Context, c.Args().First())
					})
				},
			},
			{
				Name:      "update",
				Usage:     "replace the keywords of a category",
				ArgsUsage: "NAME [KEYWORD...]",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return cli.Exit("update needs a category name", 2)
					}
					return withEnv(c, func(e *env) error {
						return e.Service.Categories.UpdateKeywords(c.Context, c.Args().First(), c.Args().Tail())
					})
				},
			},
			{
				Name:      "move",
				Usage:     "move a category to a new priority, 0 is matched first",
				ArgsUsage: "NAME POSITION",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("move needs a category name and a position", 2)
					}
					position, err := strconv.Atoi(c.Args().Get(1))
					if err != nil {
						return cli.Exit(fmt.Sprintf("invalid position %q", c.Args().Get(1)), 2)
					}
					return withEnv(c, func(e *env) error {
						return e.Service.Categories.Move(c.Context, c.Args().First(), position)
					})
				},
			},
		},
	}
}

func withEnv(c *cli.Context, fn func(e *env) error) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()
	return fn(e)
}
