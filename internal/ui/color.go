package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle   = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func NewLine(w io.Writer, path string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+path)
}

func TrkLine(w io.Writer, path string) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+path)
}

func ErrLine(w io.Writer, path string, msg string) {
	fmt.Fprintln(w, errStyle.Render("err")+"  "+path+": "+msg)
}

func OkLine(w io.Writer, path string, msg string) {
	fmt.Fprintln(w, okStyle.Render("ok")+"   "+path+": "+msg)
}

func SummaryLine(w io.Writer, count, failed int) {
	if failed > 0 {
		fmt.Fprintf(w, "synced %d recipes, %d failed to parse\n", count, failed)
		return
	}
	fmt.Fprintf(w, "synced %d recipes\n", count)
}

func ListLine(w io.Writer, id int64, fileName, title string, steps int) {
	fmt.Fprintf(w, "%4d  %s  %s %s\n",
		id, title, faintStyle.Render(fileName), faintStyle.Render(fmt.Sprintf("(%d steps)", steps)))
}

func Header(w io.Writer, id int64, fileName string) {
	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("#%d  %s", id, fileName)))
}

func Title(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func StepHeading(w io.Writer, n int, duration string) {
	heading := fmt.Sprintf("step %d", n)
	fmt.Fprint(w, titleStyle.Render(heading))
	if duration != "" {
		fmt.Fprint(w, " "+faintStyle.Render("("+duration+")"))
	}
	fmt.Fprintln(w)
}
