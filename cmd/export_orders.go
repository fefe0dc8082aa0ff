package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	salesApi "erp.GO/api/sales"
	"erp.GO/config"
	salesRepo "erp.GO/model/repository/sales"
	orderService "erp.GO/service/order"
)

var (
	exportStatus   string
	exportCustomer string
	exportSort     string
	exportDesc     bool
	exportOut      string
)

var exportOrdersCmd = &cobra.Command{
	Use:   "orders:export",
	Short: "Export sales orders as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		rows, err := salesApi.ExportRows(salesRepo.NewSalesRepository(db), salesApi.ExportOptions{
			Status:   exportStatus,
			Customer: exportCustomer,
			Sort:     exportSort,
			Desc:     exportDesc,
		})
		if err != nil {
			fmt.Printf("Export failed: %v\n", err)
			os.Exit(1)
		}

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				fmt.Printf("Cannot create %s: %v\n", exportOut, err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}
		if err := orderService.WriteCSV(out, rows); err != nil {
			fmt.Printf("Export failed: %v\n", err)
			os.Exit(1)
		}
		if exportOut != "" {
			fmt.Printf("Wrote %d orders to %s\n", len(rows), exportOut)
		}
	},
}

func init() {
	exportOrdersCmd.Flags().StringVar(&exportStatus, "status", "", "Filter by order status")
	exportOrdersCmd.Flags().StringVar(&exportCustomer, "customer", "", "Filter by customer name substring")
	exportOrdersCmd.Flags().StringVar(&exportSort, "sort", "created_at", "Sort column")
	exportOrdersCmd.Flags().BoolVar(&exportDesc, "desc", false, "Sort descending")
	exportOrdersCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportOrdersCmd)
}
