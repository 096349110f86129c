// Command maprel groups and prints records read from YAML files.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var logger = log.New(os.Stderr, "maprel: ", 0)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the payments example grouped by product, region and vat",
		Args:  cobra.NoArgs,
		RunE:  demo}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "table",
		Short: "Print records from a YAML file",
		Args:  cobra.NoArgs,
		RunE:  table}
	cmd.Flags().StringP("file", "f", "", "YAML file holding a list of records")
	cmd.Flags().StringP("columns", "c", "", "fields to print, separated by spaces")
	cmd.Flags().StringArray("where", nil, "keep records where field=value")
	cmd.Flags().String("sort", "", "fields to sort by, separated by spaces")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("columns")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "group",
		Short: "Group records from a YAML file and print one row per group",
		Args:  cobra.NoArgs,
		RunE:  group}
	cmd.Flags().StringP("file", "f", "", "YAML file holding a list of records")
	cmd.Flags().StringP("by", "b", "", "fields to group by, separated by spaces")
	cmd.Flags().StringP("columns", "c", "", "fields to print (default: the group fields, count and sums)")
	cmd.Flags().StringArray("sum", nil, "numeric field to sum per group as sum_<field>")
	cmd.Flags().StringArray("where", nil, "keep records where field=value before grouping")
	cmd.Flags().String("sort", "", "fields to sort the groups by, separated by spaces")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("by")
	root.AddCommand(cmd)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "maprel",
		Short:        "Relational operations over records",
		SilenceUsage: true}
	root.PersistentFlags().BoolP("quiet", "q", false, "silence status output")
	addCommands(root)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
