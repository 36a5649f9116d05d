package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"github.com/g-m-twostay/recipebook/Recipes"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	app := cli.App{
		Name:    "recipebook",
		Usage:   "query a recipe book loaded from a CSV file",
		Version: versioninfo.Short(),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "CSV file with name,difficulty_level,description,mastered rows",
				Required: true,
				EnvVars:  []string{"RECIPEBOOK_FILE"},
			},
			&cli.BoolFlag{
				Name:  "balance",
				Usage: "balance the book after loading",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "info",
				EnvVars: []string{"RECIPEBOOK_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: text or json",
				Value:   "text",
				EnvVars: []string{"RECIPEBOOK_LOG_FORMAT"},
			},
		},
	}
	app.Commands = []*cli.Command{
		cmdShow,
		cmdMastery,
		cmdPlan,
		cmdTree,
		cmdLevels,
		cmdAdd,
		cmdRemove,
	}
	return app.Run(args)
}

// openBook loads the book named by the global flags.
func openBook(cctx *cli.Context) (*Recipes.Book, error) {
	logger, err := configLogger(cctx, os.Stderr)
	if err != nil {
		return nil, err
	}
	book := Recipes.NewBook().WithLogger(logger.With("system", "recipes"))
	if err := book.LoadFile(cctx.String("file")); err != nil {
		return nil, err
	}
	if cctx.Bool("balance") {
		book.Balance()
		logger.Debug("balanced book", "height", book.Height())
	}
	return book, nil
}

var cmdShow = &cli.Command{
	Name:  "show",
	Usage: "print every recipe in pre-order",
	Action: func(cctx *cli.Context) error {
		book, err := openBook(cctx)
		if err != nil {
			return err
		}
		return book.PreorderDisplay(cctx.App.Writer)
	},
}

var cmdMastery = &cli.Command{
	Name:      "mastery",
	Usage:     "print mastery points needed for recipes (-1 when unknown)",
	ArgsUsage: "<name>...",
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() == 0 {
			return fmt.Errorf("need at least one recipe name")
		}
		book, err := openBook(cctx)
		if err != nil {
			return err
		}
		for _, name := range cctx.Args().Slice() {
			fmt.Fprintf(cctx.App.Writer, "%s\t%d\n", name, book.CalculateMasteryPoints(name))
		}
		return nil
	},
}

var cmdPlan = &cli.Command{
	Name:      "plan",
	Usage:     "list the recipes to master, in order, before mastering a recipe",
	ArgsUsage: "<name>",
	Action: func(cctx *cli.Context) error {
		name := cctx.Args().First()
		if name == "" {
			return fmt.Errorf("need a recipe name")
		}
		book, err := openBook(cctx)
		if err != nil {
			return err
		}
		plan, ok := book.MasteryPlan(name)
		if !ok {
			return fmt.Errorf("recipe not found: %s", name)
		}
		for i, r := range plan {
			fmt.Fprintf(cctx.App.Writer, "%d. %s (difficulty %d)\n", i+1, r.Name, r.Difficulty)
		}
		return nil
	},
}

var cmdTree = &cli.Command{
	Name:  "tree",
	Usage: "draw the shape of the book's search tree",
	Action: func(cctx *cli.Context) error {
		book, err := openBook(cctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, renderTree(book).String())
		return nil
	},
}

var cmdLevels = &cli.Command{
	Name:  "levels",
	Usage: "print recipe names level by level from the root",
	Action: func(cctx *cli.Context) error {
		book, err := openBook(cctx)
		if err != nil {
			return err
		}
		for d, level := range book.Levels() {
			names := make([]string, len(level))
			for i, r := range level {
				names[i] = r.Name
			}
			fmt.Fprintf(cctx.App.Writer, "%d: %s\n", d, strings.Join(names, " "))
		}
		return nil
	},
}

var cmdAdd = &cli.Command{
	Name:      "add",
	Usage:     "add a recipe to the loaded book and print the result (the file isn't changed)",
	ArgsUsage: "<name> <difficulty> <description>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "mastered",
			Usage: "mark the new recipe as mastered",
		},
	},
	Action: func(cctx *cli.Context) error {
		args := cctx.Args()
		if args.Len() != 3 {
			return fmt.Errorf("expected name, difficulty and description")
		}
		d, err := strconv.Atoi(args.Get(1))
		if err != nil {
			return fmt.Errorf("invalid difficulty %q: %w", args.Get(1), err)
		}
		book, err := openBook(cctx)
		if err != nil {
			return err
		}
		r := Recipes.Recipe{Name: args.Get(0), Difficulty: d, Description: args.Get(2), Mastered: cctx.Bool("mastered")}
		if !book.AddRecipe(r) {
			return fmt.Errorf("recipe already exists: %s", r.Name)
		}
		return book.PreorderDisplay(cctx.App.Writer)
	},
}

var cmdRemove = &cli.Command{
	Name:      "remove",
	Usage:     "remove a recipe from the loaded book and print the result (the file isn't changed)",
	ArgsUsage: "<name>",
	Action: func(cctx *cli.Context) error {
		name := cctx.Args().First()
		if name == "" {
			return fmt.Errorf("need a recipe name")
		}
		book, err := openBook(cctx)
		if err != nil {
			return err
		}
		if !book.RemoveRecipe(name) {
			return fmt.Errorf("recipe not found: %s", name)
		}
		return book.PreorderDisplay(cctx.App.Writer)
	},
}
