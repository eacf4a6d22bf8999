package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "work-journal",
		Short: "Personal work journal web app",
	}
)

func main() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web app",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	rootCmd.AddCommand(serveCmd)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to a running instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			category, _ := cmd.Flags().GetString("category")
			text, _ := cmd.Flags().GetString("text")
			return runAdd(apiFlag, date, category, text, os.Stdout)
		},
	}
	addCmd.Flags().StringP("date", "d", "", "Entry date (YYYY-MM-DD)")
	addCmd.Flags().StringP("category", "c", "work", "Category: work, learning, interesting-thing")
	addCmd.Flags().StringP("text", "t", "", "Entry text")
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("text")
	rootCmd.AddCommand(addCmd)

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check the health of a running instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(apiFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(healthCmd)

	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Work journal base URL")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
