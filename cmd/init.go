package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	sqliteFlag     bool
	postgresqlFlag bool
	mysqlFlag      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a catalogseed config file",
	Long:  `Write a default ` + config.FileName + `.json into the current directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := "postgresql"
		flagCount := 0

		if sqliteFlag {
			provider = "sqlite"
			flagCount++
		}
		if postgresqlFlag {
			provider = "postgresql"
			flagCount++
		}
		if mysqlFlag {
			provider = "mysql"
			flagCount++
		}

		if flagCount > 1 {
			return fmt.Errorf("please specify only one database type (--sqlite, --postgresql, or --mysql)")
		}

		if err := config.InitializeProject(provider); err != nil {
			return err
		}

		color.Green("✅ Created %s.json", config.FileName)
		color.Cyan("\n📝 Next steps:")
		color.White("  1. Adjust counts and output in %s.json", config.FileName)
		color.White("  2. Run 'catalogseed generate'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&sqliteFlag, "sqlite", false, "Initialize project for SQLite database")
	initCmd.Flags().BoolVar(&postgresqlFlag, "postgresql", false, "Initialize project for PostgreSQL database")
	initCmd.Flags().BoolVar(&mysqlFlag, "mysql", false, "Initialize project for MySQL database")
}
