package main

import (
	"context"
	"log"
	"os"

	"trivia/internal/bank"
	"trivia/internal/datastore"

	"github.com/hiendaovinh/toolkit/pkg/env"
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
		Name: "export",
		Commands: []*cli.Command{
			commandExport(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandExport() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "dump every question as a CSV bank that bank import can load back",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Value: "./questions.csv",
			},
			&cli.IntFlag{
				Name:  "batch",
				Value: 100,
			},
		},
		Action: func(c *cli.Context) error {
			vs, err := env.EnvsRequired("DB_DSN")
			if err != nil {
				return err
			}

			postgresDB, err := getDb(vs["DB_DSN"])
			if err != nil {
				return err
			}
			defer postgresDB.Close()

			file, err := os.Create(c.String("output"))
			if err != nil {
				return err
			}
			defer file.Close()

			exported, err := export(c.Context, postgresDB, bank.NewWriter(file), c.Int("batch"))
			if err != nil {
				return err
			}

			log.Printf("exported %d questions to %s\n", exported, c.String("output"))
			return nil
		},
	}
}

func export(ctx context.Context, db bun.IDB, w *bank.Writer, limit int) (int, error) {
	if limit < 1 {
		limit = 100
	}

	exported := 0
	for offset := 0; ; offset += limit {
		log.Println("start", offset, limit)
		questions, err := datastore.GetQuestionsBatch(ctx, db, limit, offset)
		if err != nil {
			return exported, err
		}
		if len(questions) == 0 {
			break
		}

		if err := w.Write(questions); err != nil {
			return exported, err
		}
		exported += len(questions)
	}

	// header only when the table is empty
	if exported == 0 {
		if err := w.Write(nil); err != nil {
			return 0, err
		}
	}
	return exported, w.Flush()
}

func getDb(dsn string) (*bun.DB, error) {
	if os.Getenv("DB_DRIVER") == datastore.DriverSQLite {
		return datastore.OpenSQLite(dsn)
	}
	return datastore.OpenPostgres(dsn, os.Getenv("DB_PASSWORD")), nil
}
