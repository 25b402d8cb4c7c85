package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"goeda/adapters/excel"
	"goeda/api"
	"goeda/app"
	"goeda/domain/table"
	"goeda/internal/audit"
	"goeda/internal/config"
	"goeda/internal/render"
	"goeda/internal/testkit"
)

var (
	flagFile   string
	flagSheet  string
	flagFactor float64
	flagFloor  bool
)

func main() {
	// .env is optional for the CLI
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "eda",
		Short: "Exploratory data audits: missing values, outliers, frequencies",
	}

	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "CSV or XLSX input (default: seeded demo data)")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "Sheet1", "Worksheet name for XLSX input")
	rootCmd.PersistentFlags().Float64Var(&flagFactor, "factor", 1.5, "IQR multiplier for outlier bounds")
	rootCmd.PersistentFlags().BoolVar(&flagFloor, "floor-at-zero", true, "Clamp the lower outlier bound to zero")

	rootCmd.AddCommand(
		newMissingCmd(),
		newOutliersCmd(),
		newScanCmd(),
		newCleanCmd(),
		newFreqCmd(),
		newProfileCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadAuditor() (*app.Auditor, error) {
	tbl, err := loadTable()
	if err != nil {
		return nil, err
	}
	bounds := audit.BoundsOptions{Factor: flagFactor, FloorAtZero: flagFloor}
	return app.NewAuditor(tbl, bounds), nil
}

func loadTable() (*table.Table, error) {
	if flagFile != "" {
		return excel.NewDataReader(flagFile, flagSheet).ReadTable()
	}
	return testkit.NewGenerator(testkit.DefaultGeneratorConfig()).OrdersTable()
}

func newMissingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "missing",
		Short: "Report null counts and percentages per column",
		RunE: func(cmd *cobra.Command, args []string) error {
			auditor, err := loadAuditor()
			if err != nil {
				return err
			}
			summary, err := auditor.Missing()
			if err != nil {
				return err
			}
			fmt.Print(render.MissingText(summary))
			return nil
		},
	}
}

func newOutliersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outliers [column]",
		Short: "Report IQR outliers for one numeric column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auditor, err := loadAuditor()
			if err != nil {
				return err
			}
			rep, err := auditor.Outliers(args[0])
			if err != nil {
				return err
			}
			fmt.Print(render.OutliersText(rep))
			return nil
		},
	}
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Report IQR outliers for every numeric column",
		RunE: func(cmd *cobra.Command, args []string) error {
			auditor, err := loadAuditor()
			if err != nil {
				return err
			}
			reports, err := auditor.ScanOutliers(cmd.Context())
			if err != nil {
				return err
			}
			for _, rep := range reports {
				fmt.Print(render.OutliersText(rep))
				fmt.Println()
			}
			return nil
		},
	}
}

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Median remediation for missing values and outliers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "missing [column]",
		Short: "Replace nulls in a numeric column with its median",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auditor, err := loadAuditor()
			if err != nil {
				return err
			}
			median, err := auditor.ImputeMissing(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Missing values in column %q treated with the median (%v).\n", args[0], median)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "outliers [column]",
		Short: "Replace out-of-bounds values in a numeric column with its median",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auditor, err := loadAuditor()
			if err != nil {
				return err
			}
			median, err := auditor.ReplaceOutliers(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Outliers in column %q treated with the median (%v).\n", args[0], median)
			return nil
		},
	})

	return cmd
}

func newFreqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "freq [column]",
		Short: "Report value counts and percentages for one column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auditor, err := loadAuditor()
			if err != nil {
				return err
			}
			freq, err := auditor.Frequency(args[0])
			if err != nil {
				return err
			}
			fmt.Print(render.FrequencyText(freq))
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Report the full statistical profile of the table",
		RunE: func(cmd *cobra.Command, args []string) error {
			auditor, err := loadAuditor()
			if err != nil {
				return err
			}
			profile, err := auditor.Profile()
			if err != nil {
				return err
			}
			fmt.Print(render.ProfileText(profile))
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the reports over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			auditor, err := loadAuditor()
			if err != nil {
				return err
			}
			return api.NewApp(auditor, cfg).Start()
		},
	}
}
