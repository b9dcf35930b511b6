package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/npillmayer/wellpath"
	"github.com/npillmayer/wellpath/internal/log"
	"github.com/npillmayer/wellpath/plot"
	"github.com/npillmayer/wellpath/survey"
	"github.com/spf13/cobra"
)

var (
	fields    = survey.DefaultFields()
	config    = plot.DefaultConfig()
	showTicks bool
)

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory <survey.csv>",
	Short: "Compute and print the plotted stations of a survey",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrajectory,
}

func init() {
	rootCmd.AddCommand(trajectoryCmd)
	f := trajectoryCmd.Flags()
	f.StringVar(&fields.Depth, "md", fields.Depth, "column holding measured depth")
	f.StringVar(&fields.Inclination, "inc", fields.Inclination, "column holding inclination (degrees)")
	f.StringVar(&fields.Azimuth, "azi", fields.Azimuth, "column holding azimuth (degrees)")
	f.Float64Var(&config.Scale.Viewport.Width, "width", config.Scale.Viewport.Width, "viewport width")
	f.Float64Var(&config.Scale.Viewport.Height, "height", config.Scale.Viewport.Height, "viewport height")
	f.Float64Var(&config.Scale.Margins.Top, "margin-top", config.Scale.Margins.Top, "top margin")
	f.Float64Var(&config.Scale.Margins.Right, "margin-right", config.Scale.Margins.Right, "right margin")
	f.Float64Var(&config.Scale.Margins.Bottom, "margin-bottom", config.Scale.Margins.Bottom, "bottom margin")
	f.Float64Var(&config.Scale.Margins.Left, "margin-left", config.Scale.Margins.Left, "left margin")
	f.IntVar(&config.Scale.TickCount, "ticks", config.Scale.TickCount, "target tick count")
	f.Float64Var(&config.CasingHalfWidth, "casing", config.CasingHalfWidth, "casing half-width in plot units")
	f.BoolVar(&showTicks, "show-ticks", false, "print axis ticks and the plot transform")
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	rows, fetchErr := readSurvey(args[0])
	res, err := plot.Run(plot.Request{
		Enabled:  true,
		Rows:     rows,
		Fields:   fields,
		FetchErr: fetchErr,
		Config:   config,
	})
	var overlay plot.Overlay
	overlay.Report(err)
	if err != nil {
		for _, ch := range []plot.Channel{overlay.Fetch, overlay.Validation} {
			if ch.Active {
				log.Errorw(ch.Message, "category", ch.Category, "file", args[0])
			}
		}
		return err
	}
	log.Infow("trajectory computed", "file", args[0], "stations", len(res.Stations))
	printStations(cmd.OutOrStdout(), res)
	if showTicks {
		printTicks(cmd.OutOrStdout(), res)
	}
	return nil
}

// readSurvey reads a CSV file with a header line naming the columns.
// Malformed files are reported as errors of the data source.
func readSurvey(path string) ([]survey.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: missing header line", path)
		}
		return nil, err
	}
	var rows []survey.Row
	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(survey.Record, len(header))
		for i, col := range header {
			if i >= len(rec) || strings.TrimSpace(rec[i]) == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: column %q: %w", path, line, col, err)
			}
			row[strings.TrimSpace(col)] = v
		}
		rows = append(rows, row)
	}
	log.Debugf("read %d survey rows from %s", len(rows), path)
	return rows, nil
}

func printStations(w io.Writer, res *plot.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MD\tINC\tAZI\tTVD\tNORTH\tEAST\tHD\tDLS\tX\tY\tTHETA\t")
	for _, st := range res.Stations {
		fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.1f\t%.1f\t%.2f\t\n",
			st.MD, st.Inc, st.Azi, st.TVD, st.North, st.East, st.HD, st.DLS,
			st.Point.X(), st.Point.Y(), st.Theta*wellpath.Rad2Deg)
	}
	tw.Flush()
}

// printTicks prints the axis ticks and the transform from (HD, TVD) to plot
// coordinates.
func printTicks(w io.Writer, res *plot.Result) {
	count := config.Scale.TickCount
	fmt.Fprintf(w, "x ticks: %v\n", res.Frame.X.Ticks(count))
	fmt.Fprintf(w, "y ticks: %v\n", res.Frame.Y.Ticks(count))
	at := res.Frame.AT()
	fmt.Fprintf(w, "x = %.4g·hd %+.4g\n", at.Coeff(0, 0), at.Coeff(0, 2))
	fmt.Fprintf(w, "y = %.4g·tvd %+.4g\n", at.Coeff(1, 1), at.Coeff(1, 2))
}
