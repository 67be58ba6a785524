package main

import (
	"log"
	"os"

	"trivia/internal/bank"
	"trivia/internal/datastore"
	"trivia/internal/models"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/urfave/cli/v2"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "bank",
		Commands: []*cli.Command{
			commandImportCategories(),
			commandImport(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandImportCategories() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "import category labels, one per line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Value: "./categories.csv",
			},
		},
		Action: func(c *cli.Context) error {
			postgresDB, err := getDb()
			if err != nil {
				return err
			}
			defer postgresDB.Close()

			file, err := os.Open(c.String("input"))
			if err != nil {
				return err
			}
			defer file.Close()

			types, err := bank.ReadCategories(file)
			if err != nil {
				return err
			}

			ctx := c.Context
			if err := datastore.CreateTables(ctx, postgresDB); err != nil {
				return err
			}

			for _, categoryType := range types {
				category := &models.Category{Type: categoryType}
				if _, err := datastore.InsertCategory(ctx, postgresDB, category); err != nil {
					log.Println("Error when insert category", categoryType, err)
					continue
				}
				log.Printf("category %d: %s\n", category.ID, category.Type)
			}

			return nil
		},
	}
}

func commandImport() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "import questions from question,answer,category,difficulty,rating rows",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Value: "./questions.csv",
			},
		},
		Action: func(c *cli.Context) error {
			postgresDB, err := getDb()
			if err != nil {
				return err
			}
			defer postgresDB.Close()

			file, err := os.Open(c.String("input"))
			if err != nil {
				return err
			}
			defer file.Close()

			questions, skipped, err := bank.ReadQuestions(file)
			if err != nil {
				return err
			}
			for _, s := range skipped {
				log.Println("skip line", s.Line, s.Reason)
			}

			ctx := c.Context
			if err := datastore.CreateTables(ctx, postgresDB); err != nil {
				return err
			}

			imported := 0
			for _, input := range questions {
				if _, err := datastore.InsertQuestion(ctx, postgresDB, input.ToQuestion()); err != nil {
					log.Println("Error when insert question", input.Question, err)
					continue
				}
				imported++
			}

			log.Printf("imported %d questions, skipped %d\n", imported, len(skipped))
			return nil
		},
	}
}

func getDb() (*bun.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if os.Getenv("DB_DRIVER") == datastore.DriverSQLite {
		return datastore.OpenSQLite(dsn)
	}
	return datastore.OpenPostgres(dsn, os.Getenv("DB_PASSWORD")), nil
}
