package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/vamosestudar/estudar/internal/content"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print the exam calendar of enabled assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		school, _ := cmd.Flags().GetString("school")
		course, _ := cmd.Flags().GetString("course")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		f := content.Filter{School: school, Course: course}
		writeCalendarTable(cmd.OutOrStdout(), content.Calendar(f.Apply(cat.Enabled())))
		return nil
	},
}

func init() {
	calendarCmd.Flags().String("school", "", "Only assessments of this school")
	calendarCmd.Flags().String("course", "", "Only assessments of this course")
}

func writeCalendarTable(w io.Writer, entries []content.CalendarEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Nenhuma data de prova cadastrada.")
		return
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			content.FormatDate(e.Date),
			e.Icon + " " + e.Subject,
			e.AssessmentTitle,
			e.School,
		}
	}

	t := newTable("Data", "Matéria", "Avaliação", "Escola").Rows(rows...)
	lipgloss.Fprintln(w, t.Render())
	fmt.Fprintf(w, "\n%d provas\n", len(entries))
}
