package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dyluth/swayctl/internal/printer"
	"github.com/dyluth/swayctl/internal/workspace"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	listLong bool
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all workspaces",
	Long: `List the names of all named workspaces, sorted, one per line.

Workspaces with only a number are left out of the default listing.

Use --long for a table of every workspace with its number, output and state,
or --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Show every workspace as a table")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// workspaceInfo is the --json and --long view of one workspace.
type workspaceInfo struct {
	Number  *int   `json:"number"`
	Name    string `json:"name,omitempty"`
	Output  string `json:"output"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TimeoutDuration())
	defer cancel()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	switch {
	case listJSON:
		return outputJSON(printer.Stdout, infosOf(s.snapshot))
	case listLong:
		return outputTable(printer.Stdout, infosOf(s.snapshot))
	default:
		for _, name := range workspace.List(s.snapshot) {
			printer.Println(name)
		}
		return nil
	}
}

// infosOf orders workspaces by number, then name; unnumbered ones last.
func infosOf(snap workspace.Snapshot) []workspaceInfo {
	infos := make([]workspaceInfo, 0, len(snap))
	for _, w := range snap {
		info := workspaceInfo{
			Number:  w.Number,
			Visible: w.Visible,
			Focused: w.Focused,
		}
		if w.Name != nil {
			info.Name = *w.Name
		}
		if w.Output != nil {
			info.Output = *w.Output
		}
		infos = append(infos, info)
	}

	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		switch {
		case a.Number != nil && b.Number != nil && *a.Number != *b.Number:
			return *a.Number < *b.Number
		case (a.Number == nil) != (b.Number == nil):
			return a.Number != nil
		default:
			return a.Name < b.Name
		}
	})
	return infos
}

func outputJSON(w io.Writer, infos []workspaceInfo) error {
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal workspaces: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func outputTable(w io.Writer, infos []workspaceInfo) error {
	table := tablewriter.NewWriter(w)
	table.Header("Num", "Name", "Output", "State")

	for _, info := range infos {
		num := "-"
		if info.Number != nil {
			num = strconv.Itoa(*info.Number)
		}
		state := ""
		switch {
		case info.Focused:
			state = "focused"
		case info.Visible:
			state = "visible"
		}
		if err := table.Append([]string{num, info.Name, info.Output, state}); err != nil {
			return fmt.Errorf("failed to format workspace table: %w", err)
		}
	}

	return table.Render()
}
