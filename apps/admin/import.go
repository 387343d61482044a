package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/ecoquest/core/records"
	"github.com/trezcool/ecoquest/core/seed"
	"github.com/trezcool/ecoquest/core/student"
)

func (cli *commandLine) importCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Preview a roster CSV import against the seeded roster",
		Long: "import parses FILE (or stdin when FILE is -) the way the roster upload does and prints the students it would add. " +
			"Nothing is saved.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening roster file")
				}
				defer f.Close()
				r = f
			}
			return cli.previewImport(cmd.OutOrStdout(), r, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the imported students as JSON")
	return cmd
}

func (cli *commandLine) previewImport(w io.Writer, r io.Reader, asJSON bool) error {
	data, err := seed.Load()
	if err != nil {
		return errors.Wrap(err, "loading seed data")
	}
	svc := student.NewService(records.Deps{Now: cli.now, IntN: cli.intN}, nil, data.Students...)

	imported, err := svc.ImportCSV(r)
	if err != nil {
		return errors.Wrap(err, "importing roster")
	}

	if asJSON {
		if imported == nil {
			imported = []student.Student{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(imported)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tAVATAR")
	for _, s := range imported {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.Email, s.Avatar)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	stats := svc.Stats()
	fmt.Fprintf(w, "\n%d students would be imported; the roster would have %d students (average level %d).\n",
		len(imported), stats.Total, stats.AvgLevel)
	return nil
}
