// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/catalog"
	"github.com/katalvlaran/enigma/simulator"
	"github.com/katalvlaran/enigma/wiring"
)

const (
	markActive = ">"
	markIdle   = " "
)

// Renderer holds the styles for one output writer.
type Renderer struct {
	header lipgloss.Style
	cell   lipgloss.Style
	active lipgloss.Style
	window lipgloss.Style
	column lipgloss.Style
	banner lipgloss.Style
}

// New returns a Renderer whose colour profile matches w.
func New(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	accent := lipgloss.AdaptiveColor{Light: "#B8002E", Dark: "#FF5F87"}

	return &Renderer{
		header: lr.NewStyle().Bold(true),
		cell:   lr.NewStyle().Faint(true),
		active: lr.NewStyle().Bold(true).Foreground(accent),
		window: lr.NewStyle().Reverse(true),
		column: lr.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		banner: lr.NewStyle().Bold(true).Foreground(accent),
	}
}

// Diagram renders st. When res is non-nil its trail is highlighted.
//
// Trail layout (n rotors): index 0 is the entry wheel, 1..n the forward
// rotor passes right to left, n+1 the reflector, n+2..2n+1 the backward
// passes left to right.
func (r *Renderer) Diagram(st simulator.Status, res *simulator.Result) string {
	n := len(st.Rotors)
	hits := func(idx ...int) map[int]bool {
		out := make(map[int]bool, len(idx))
		if res == nil {
			return out
		}
		for _, i := range idx {
			if i >= 0 && i < len(res.Positions) {
				out[res.Positions[i]] = true
			}
		}

		return out
	}

	cols := make([]string, 0, n+3)
	cols = append(cols, r.tableColumn("UKW", st.Reflector.Name, "", st.Reflector.Table, hits(n+1)))
	for i, rs := range st.Rotors {
		cols = append(cols, r.tableColumn(fmt.Sprintf("R%d", i+1), rs.Name, rs.Window, rs.Table, hits(n-i, n+2+i)))
	}
	cols = append(cols, r.etwColumn(st.ETW, hits(0, 2*n+1)))
	cols = append(cols, r.plugboardColumn(st.Plugboard, res))

	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if res != nil {
		out = lipgloss.JoinVertical(lipgloss.Left, out, r.Result(*res))
	}

	return out
}

// Result renders one key press as "A -> B  (A>I>X>...>B)".
func (r *Renderer) Result(res simulator.Result) string {
	if !res.OK() {
		return r.banner.Render(fmt.Sprintf("%s -> (no output)", res.Input))
	}

	return r.banner.Render(fmt.Sprintf("%s -> %s", res.Input, res.Output)) + "  " + r.cell.Render("("+res.Trail()+")")
}

// Summary renders the window letters and plugboard pairs on one line.
func (r *Renderer) Summary(st simulator.Status) string {
	plugs := make([]string, 0, len(st.Plugboard))
	for a, b := range st.Plugboard {
		if a < b {
			plugs = append(plugs, a+b)
		}
	}
	sort.Strings(plugs)

	return fmt.Sprintf("%s %s  %s %s",
		r.header.Render("windows"), r.window.Render(st.Windows),
		r.header.Render("plugs"), strings.Join(plugs, " "))
}

// Catalog renders the models of c with their rotors, reflectors and
// entry wheel.
func (r *Renderer) Catalog(c *catalog.Table) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MODEL", "ROTORS", "REFLECTORS", "ETW")
	for _, m := range c.Models() {
		rotors := make([]string, 0)
		for _, rt := range c.RotorTypes(m) {
			rotors = append(rotors, rt.String())
		}
		reflectors := make([]string, 0)
		for _, ft := range c.ReflectorTypes(m) {
			reflectors = append(reflectors, ft.String())
		}
		t.Row(m.String(), strings.Join(rotors, " "), strings.Join(reflectors, " "), c.EntryWheel(m))
	}

	return t.String()
}

func (r *Renderer) tableColumn(title, name, window string, slots []wiring.Entry, hit map[int]bool) string {
	lines := make([]string, 0, len(slots)+3)
	lines = append(lines, r.header.Render(title), r.cell.Render(name))
	if window != "" {
		lines = append(lines, "win "+r.window.Render(window))
	} else {
		lines = append(lines, "")
	}
	for i, e := range slots {
		lines = append(lines, r.row(hit[i], fmt.Sprintf("%c %c", e.In, e.Out)))
	}

	return r.column.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) etwColumn(etw string, hit map[int]bool) string {
	lines := []string{r.header.Render("ETW"), "", ""}
	for i := 0; i < len(etw); i++ {
		lines = append(lines, r.row(hit[i], string(etw[i])))
	}

	return r.column.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) plugboardColumn(pb map[string]string, res *simulator.Result) string {
	lines := []string{r.header.Render("PB"), "", ""}
	for i := 0; i < alphabet.Size; i++ {
		k := string(alphabet.Letter(i))
		v, ok := pb[k]
		if !ok {
			v = k
		}
		on := res != nil && (k == res.Input || (res.Output != "" && k == res.Output))
		lines = append(lines, r.row(on, k+" "+v))
	}

	return r.column.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) row(on bool, text string) string {
	if on {
		return r.active.Render(markActive + text)
	}

	return r.cell.Render(markIdle + text)
}
