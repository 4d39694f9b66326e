// Package report prints localized progress lines for a scaffolding run.
// Progress goes to the output writer; warnings and errors go to the error
// writer and never change the exit status by themselves.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fyrsmithlabs/yuuskel/internal/i18n"
)

// Reporter writes styled, localized messages.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	locale i18n.Locale

	created lipgloss.Style
	added   lipgloss.Style
	updated lipgloss.Style
	info    lipgloss.Style
	accent  lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	done    lipgloss.Style
	title   lipgloss.Style
	dim     lipgloss.Style
}

// New returns a Reporter. Color is enabled only when out is a terminal.
func New(out, errOut io.Writer, locale i18n.Locale) *Reporter {
	r := lipgloss.NewRenderer(out)
	e := lipgloss.NewRenderer(errOut)
	return &Reporter{
		out:     out,
		errOut:  errOut,
		locale:  locale,
		created: r.NewStyle().Foreground(lipgloss.Color("2")),
		added:   r.NewStyle().Foreground(lipgloss.Color("3")),
		updated: r.NewStyle().Foreground(lipgloss.Color("4")),
		info:    r.NewStyle().Foreground(lipgloss.Color("4")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("6")),
		warn:    e.NewStyle().Foreground(lipgloss.Color("3")),
		fail:    e.NewStyle().Foreground(lipgloss.Color("1")),
		done:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		title:   r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		dim:     r.NewStyle().Faint(true),
	}
}

// Locale returns the reporter's locale.
func (r *Reporter) Locale() i18n.Locale { return r.locale }

func (r *Reporter) text(key i18n.Key) string { return i18n.Text(r.locale, key) }

func (r *Reporter) line(s string) { fmt.Fprintln(r.out, s) }

// Title prints the banner line.
func (r *Reporter) Title() { r.line(r.title.Render(r.text(i18n.Title))) }

// Target prints the resolved target directory.
func (r *Reporter) Target(dir string) {
	r.line(i18n.Format(r.locale, i18n.TargetDir, r.accent.Render(dir)))
}

// Directory reports a created directory. existing distinguishes filling in
// a gap in an existing project from creating a fresh one.
func (r *Reporter) Directory(rel string, existing bool) {
	if existing {
		r.line(i18n.Format(r.locale, i18n.AddDir, r.added.Render(rel)))
		return
	}
	r.line(i18n.Format(r.locale, i18n.CreateDir, r.created.Render(rel)))
}

// Created reports a newly written file.
func (r *Reporter) Created(name string) {
	r.line(i18n.Format(r.locale, i18n.CreatedFile, r.created.Render(name)))
}

// Updated reports a rewritten file.
func (r *Reporter) Updated(name string) {
	r.line(i18n.Format(r.locale, i18n.UpdatedFile, r.updated.Render(name)))
}

// Skipped reports a file left untouched because it exists.
func (r *Reporter) Skipped(name string) {
	r.line(r.info.Render(i18n.Format(r.locale, i18n.SkipExisting, name)))
}

// License reports the written LICENSE.
func (r *Reporter) License(id string) {
	r.line(i18n.Format(r.locale, i18n.LicenseWritten, r.accent.Render(id)))
}

// Success prints a plain localized success message.
func (r *Reporter) Success(key i18n.Key) {
	r.line(r.created.Render(r.text(key)))
}

// Cancelled prints the cancellation notice.
func (r *Reporter) Cancelled() {
	r.line(r.fail.Render(r.text(i18n.Cancelled)))
}

// Warn prints a localized warning to the error writer.
func (r *Reporter) Warn(key i18n.Key, args ...interface{}) {
	fmt.Fprintln(r.errOut, r.warn.Render(i18n.Format(r.locale, key, args...)))
}

// Failure prints the single fatal error line to the error writer.
func (r *Reporter) Failure(err error) {
	fmt.Fprintln(r.errOut, r.fail.Render(i18n.Format(r.locale, i18n.InitFailed, err.Error())))
}

// Summary prints the closing block.
func (r *Reporter) Summary(dir string, existing bool, prefixToken string, files Files) {
	done := i18n.InitDone
	if existing {
		done = i18n.IncrementalDone
	}
	fmt.Fprintln(r.out)
	r.line(r.done.Render(r.text(done)))
	r.line(i18n.Format(r.locale, i18n.GuidePath, dir, r.accent.Render(files.Usage)))
	r.line(i18n.Format(r.locale, i18n.ReadmePath, dir, r.accent.Render(files.Readme)))
	r.line(i18n.Format(r.locale, i18n.EnvPath, dir, r.accent.Render(files.Env)))
	if prefixToken != "" {
		r.line(i18n.Format(r.locale, i18n.PrefixAdded, r.added.Bold(true).Render(prefixToken)))
	}
	r.line(r.dim.Render(r.text(i18n.DotenvTip)))
}

// Files names the artifacts mentioned in the summary.
type Files struct {
	Usage  string
	Readme string
	Env    string
}
