package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxterm/internal/logger"
	"github.com/alexisbeaulieu97/boxterm/internal/table"
	"github.com/alexisbeaulieu97/boxterm/internal/theme"
)

type tableOptions struct {
	style  string
	align  string
	gap    int
	header bool
}

func newTableCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &tableOptions{}

	cmd := &cobra.Command{
		Use:   "table [file]",
		Short: "Draw tab-separated rows as a boxed table",
		Long: "Reads tab-separated rows from a file, or stdin when the file is omitted or \"-\".\n" +
			"A row whose only field is \"---\" becomes a separator.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootFlags.open(cmd, "draw table")
			if err != nil {
				return err
			}
			return runTable(cmd, s, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", theme.DefaultStyle, "Theme style for the box")
	cmd.Flags().StringVarP(&opts.align, "align", "a", "", "Column alignments, e.g. \"l,r,c\" (default left)")
	cmd.Flags().IntVarP(&opts.gap, "gap", "g", 2, "Spaces between columns")
	cmd.Flags().BoolVar(&opts.header, "header", true, "Treat the first row as a centred header followed by a separator")

	return cmd
}

func runTable(cmd *cobra.Command, s *session, args []string, opts *tableOptions) error {
	style, err := s.style("draw table", opts.style)
	if err != nil {
		return err
	}

	aligns, err := parseAligns(opts.align)
	if err != nil {
		return newCommandError("draw table", "parsing --align", err, "Use a comma separated list of l, c and r.")
	}

	in, err := openInput(cmd, args)
	if err != nil {
		return newCommandError("draw table", "opening input", err, "Check that the file exists and you have permission to read it.")
	}
	defer in.Close()

	records, err := readRecords(in)
	if err != nil {
		return newCommandError("draw table", "reading rows", err, "Rows must be tab separated.")
	}

	s.log.Component("table").WithFields(logger.Fields{"rows": len(records)}).Debug("rows read")

	return s.emit(cmd, "table", table.NewBox(style, buildTable(records, aligns, opts.gap, opts.header)))
}

func readRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

func parseAligns(list string) ([]table.Align, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	parts := strings.Split(list, ",")
	aligns := make([]table.Align, len(parts))
	for i, part := range parts {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "l", "left", "":
			aligns[i] = table.AlignLeft
		case "c", "centre", "center":
			aligns[i] = table.AlignCentre
		case "r", "right":
			aligns[i] = table.AlignRight
		default:
			return nil, fmt.Errorf("unknown alignment %q", part)
		}
	}
	return aligns, nil
}

func buildTable(records [][]string, aligns []table.Align, gap int, header bool) *table.Table {
	b := table.NewBuilder()
	for i, record := range records {
		if len(record) == 1 && strings.TrimSpace(record[0]) == "---" {
			b.Separator()
			continue
		}

		row := b.Row()
		for col, field := range record {
			align := table.AlignLeft
			switch {
			case header && i == 0:
				align = table.AlignCentre
			case col < len(aligns):
				align = aligns[col]
			}
			if col > 0 && gap > 0 {
				row.Space(gap)
			}
			row.Cell(1, align, 0, field)
		}
		row.Build()

		if header && i == 0 && len(records) > 1 {
			b.Separator()
		}
	}
	return b.Build()
}
