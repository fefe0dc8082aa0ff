package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"erp.GO/config"
)

var migrationsPath string

func newMigrator() (*migrate.Migrate, error) {
	return migrate.New("file://"+migrationsPath, "mysql://"+config.DSN())
}

var migrateUpCmd = &cobra.Command{
	Use:   "migrate:up",
	Short: "Apply all pending database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := newMigrator()
		if err != nil {
			fmt.Printf("Migrator init failed: %v\n", err)
			os.Exit(1)
		}
		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("Database is up to date.")
			return
		}
		if err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations applied.")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "migrate:down",
	Short: "Roll back the most recent migration",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := newMigrator()
		if err != nil {
			fmt.Printf("Migrator init failed: %v\n", err)
			os.Exit(1)
		}
		err = m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("Nothing to roll back.")
			return
		}
		if err != nil {
			fmt.Printf("Rollback failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Rolled back one migration.")
	},
}

func init() {
	migrateUpCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations", "Migrations directory")
	migrateDownCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations", "Migrations directory")
	rootCmd.AddCommand(migrateUpCmd)
	rootCmd.AddCommand(migrateDownCmd)
}
