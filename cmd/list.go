package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/vamosestudar/estudar/internal/content"
	"github.com/vamosestudar/estudar/internal/ui/theme"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List enabled assessments (optionally filtered by school or course)",
	RunE: func(cmd *cobra.Command, args []string) error {
		school, _ := cmd.Flags().GetString("school")
		course, _ := cmd.Flags().GetString("course")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		f := content.Filter{School: school, Course: course}
		assessments := f.Apply(cat.Enabled())
		if len(assessments) == 0 && !f.IsZero() {
			return fmt.Errorf("no assessments match school %q course %q", school, course)
		}

		writeAssessmentTable(cmd.OutOrStdout(), assessments)
		return nil
	},
}

func init() {
	listCmd.Flags().String("school", "", "Only assessments of this school")
	listCmd.Flags().String("course", "", "Only assessments of this course")
}

// writeAssessmentTable prints assessments as a table followed by a count.
func writeAssessmentTable(w io.Writer, assessments []content.Assessment) {
	rows := make([][]string, len(assessments))
	for i, a := range assessments {
		rows[i] = []string{
			strconv.Itoa(a.ID),
			a.Title,
			a.School,
			a.Course,
			content.FormatDate(a.ExamDate),
			strconv.Itoa(len(a.Subjects)),
			strconv.Itoa(a.QuestionCount()),
		}
	}

	t := newTable("ID", "Avaliação", "Escola", "Curso", "Data", "Matérias", "Questões").Rows(rows...)
	lipgloss.Fprintln(w, t.Render())
	fmt.Fprintf(w, "\n%d avaliações\n", len(assessments))
}

// newTable returns a table with the shared CLI look.
func newTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.Hint).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		})
}
