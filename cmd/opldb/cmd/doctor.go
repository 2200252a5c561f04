package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gingerlifts/opldb/internal/output"
)

// checkResult is a single doctor diagnostic outcome.
type checkResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // pass, warn, fail
	Message string `json:"message"`
}

func newDoctorCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the configured data files are readable",
		Long: `Run diagnostics to ensure opldb can load its CSV tables.

Checks:
  - Configuration loads and validates
  - lifters/meets/entries CSV files exist and are readable`,
		Example: `  # Run diagnostics
  opldb doctor

  # JSON output for scripting
  opldb doctor --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runDoctor(cmd *cobra.Command, jsonOutput bool) error {
	var results []checkResult

	cfg, err := loadConfig()
	if err != nil {
		results = append(results, checkResult{Name: "config", Status: "fail", Message: err.Error()})
		return printDoctorResults(cmd, jsonOutput, results)
	}
	results = append(results, checkResult{Name: "config", Status: "pass", Message: "configuration loaded and valid"})

	results = append(results, checkFile("lifters.csv", cfg.Data.LiftersPath))
	results = append(results, checkFile("meets.csv", cfg.Data.MeetsPath))
	results = append(results, checkFile("entries.csv", cfg.Data.EntriesPath))

	return printDoctorResults(cmd, jsonOutput, results)
}

func checkFile(label, path string) checkResult {
	info, err := os.Stat(path)
	if err != nil {
		return checkResult{Name: label, Status: "fail", Message: fmt.Sprintf("%s: %v", path, err)}
	}
	if info.IsDir() {
		return checkResult{Name: label, Status: "fail", Message: fmt.Sprintf("%s is a directory", path)}
	}
	f, err := os.Open(path)
	if err != nil {
		return checkResult{Name: label, Status: "fail", Message: fmt.Sprintf("%s: %v", path, err)}
	}
	_ = f.Close()
	return checkResult{Name: label, Status: "pass", Message: fmt.Sprintf("%s (%d bytes)", path, info.Size())}
}

func printDoctorResults(cmd *cobra.Command, jsonOutput bool, results []checkResult) error {
	failed := false
	for _, r := range results {
		if r.Status == "fail" {
			failed = true
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		out := output.New(cmd.OutOrStdout())
		for _, r := range results {
			switch r.Status {
			case "pass":
				out.Successf("%s: %s", r.Name, r.Message)
			case "warn":
				out.Warningf("%s: %s", r.Name, r.Message)
			default:
				out.Errorf("%s: %s", r.Name, r.Message)
			}
		}
	}

	if failed {
		return fmt.Errorf("doctor check failed")
	}
	return nil
}
