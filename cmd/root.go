package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/restodata/restosim/internal/models"
	"github.com/restodata/restosim/internal/simulator"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restosim",
	Short: "Generates historical operations data for restaurant back-office systems",
	Long:  `restosim is a CLI tool that deterministically fabricates multi-week restaurant operations history (hourly sales, server shift performance, inventory draw-down, schedules and labor punches) and derives back-office analytics from it: reorder predictions, staffing recommendations and menu profitability.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim := simulator.NewSimulator(cfg)
		if err := sim.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int("sales-seed", 12345, "Seed for the sales stream")
	rootCmd.Flags().Int("performance-seed", 54321, "Seed for the server performance stream")
	rootCmd.Flags().String("start-date", time.Now().AddDate(0, -1, 0).Format(time.RFC3339), "Start date for generated history")
	rootCmd.Flags().String("end-date", time.Now().Format(time.RFC3339), "End date for generated history")
	rootCmd.Flags().Int("base-tables-per-hour", 4, "Base table count per open hour")
	rootCmd.Flags().Float64("lunch-rush-factor", 1.5, "Table count multiplier during the lunch rush")
	rootCmd.Flags().Float64("dinner-rush-factor", 1.8, "Table count multiplier during the dinner rush")
	rootCmd.Flags().Float64("weekend-factor", 1.3, "Table count multiplier on weekends")
	rootCmd.Flags().Float64("holiday-factor", 1.5, "Table count multiplier on holidays")
	rootCmd.Flags().String("output-format", "json", "Output format: json, csv or parquet")
	rootCmd.Flags().String("output-path", "", "Output directory (console output when empty)")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().Bool("postgres-enabled", false, "Also persist generated datasets to Postgres")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
