package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vatscope/vatscope/internal/vatsim"
)

// unknownField is shown when a projected value cannot be resolved
// from the snapshot.
const unknownField = "???"

// minFrameWidth keeps boxes drawable on very narrow terminals.
const minFrameWidth = 40

// selectedRow is the entity under the cursor, tagged by tab. Exactly
// one of the pointers is set, matching kind.
type selectedRow struct {
	kind       int
	pilot      *vatsim.Pilot
	controller *vatsim.Controller
}

// title returns the callsign used as the popup title.
func (s selectedRow) title() string {
	if s.kind == tabPilots && s.pilot != nil {
		return s.pilot.Callsign
	}
	if s.controller != nil {
		return s.controller.Callsign
	}
	return ""
}

// cid returns the entity's network id, used for the stats page URL.
func (s selectedRow) cid() int {
	if s.kind == tabPilots && s.pilot != nil {
		return s.pilot.CID
	}
	if s.controller != nil {
		return s.controller.CID
	}
	return 0
}

// detailRow is one label/value line in the detail popup.
type detailRow struct {
	label string
	value string
}

// detailRows flattens the selected entity into popup lines. Lookup
// tables come from the snapshot.
func (s selectedRow) detailRows(data *vatsim.Data) []detailRow {
	if s.kind == tabPilots && s.pilot != nil {
		p := s.pilot
		rows := []detailRow{
			{"Name", p.Name},
			{"CID", strconv.Itoa(p.CID)},
			{"Server", p.Server},
			{"Position", fmt.Sprintf("%.4f, %.4f", p.Latitude, p.Longitude)},
			{"Altitude", fmt.Sprintf("%d ft", p.Altitude)},
			{"Groundspeed", fmt.Sprintf("%d kts", p.Groundspeed)},
			{"Heading", fmt.Sprintf("%03d", p.Heading)},
			{"Transponder", p.Transponder},
			{"QNH", fmt.Sprintf("%.2f inHg / %d mb", p.QNHinHg, p.QNHmb)},
			{"Logged on", p.LogonTime},
		}
		if fp := p.FlightPlan; fp != nil {
			rows = append(rows,
				detailRow{"Aircraft", aircraftLabel(fp)},
				detailRow{"Flight rules", fp.FlightRules},
				detailRow{"Route", fmt.Sprintf("%s -> %s", fp.Departure, fp.Arrival)},
				detailRow{"Cruise", fp.Altitude},
			)
		} else {
			rows = append(rows, detailRow{"Flight plan", "none filed"})
		}
		return rows
	}
	if s.controller != nil {
		c := s.controller
		rows := []detailRow{
			{"Name", c.Name},
			{"CID", strconv.Itoa(c.CID)},
			{"Frequency", c.Frequency},
			{"Facility", data.FacilityShort(c.Facility)},
			{"Rating", data.RatingShort(c.Rating)},
			{"Server", c.Server},
			{"Visual range", fmt.Sprintf("%d nm", c.VisualRange)},
			{"Logged on", c.LogonTime},
		}
		if len(c.TextATIS) > 0 {
			rows = append(rows, detailRow{"ATIS", strings.Join(c.TextATIS, " ")})
		}
		return rows
	}
	return nil
}

// viewData is the frame projection: everything View needs, computed
// fresh from the snapshot and the nav state on every render.
type viewData struct {
	title       string
	headers     []string
	rows        [][]string
	highlight   int
	popupOpen   bool
	selected    selectedRow
	hasSelected bool
}

// buildViewData projects the active tab into table form. Row order is
// snapshot order; the highlight is -1 for an empty list.
func (m *Model) buildViewData() viewData {
	vd := viewData{popupOpen: m.nav.popupOpen}

	switch m.nav.tab {
	case tabPilots:
		vd.title = "Pilots"
		vd.headers = []string{"Callsign", "Name", "Aircraft", "Lat", "Long"}
		vd.rows = make([][]string, 0, len(m.data.Pilots))
		for _, p := range m.data.Pilots {
			vd.rows = append(vd.rows, []string{
				p.Callsign,
				p.Name,
				aircraftLabel(p.FlightPlan),
				fmt.Sprintf("%.2f", p.Latitude),
				fmt.Sprintf("%.2f", p.Longitude),
			})
		}
		vd.highlight = m.nav.cursor(len(m.data.Pilots))
	default:
		vd.title = "Controllers"
		vd.headers = []string{"Callsign", "Name", "Frequency", "Rating"}
		vd.rows = make([][]string, 0, len(m.data.Controllers))
		for _, c := range m.data.Controllers {
			vd.rows = append(vd.rows, []string{
				c.Callsign,
				c.Name,
				c.Frequency,
				m.data.RatingShort(c.Rating),
			})
		}
		vd.highlight = m.nav.cursor(len(m.data.Controllers))
	}

	if vd.popupOpen {
		if sel, ok := m.selection(); ok {
			vd.selected = sel
			vd.hasSelected = true
		}
	}
	return vd
}

// aircraftLabel resolves the aircraft column from a filed flight
// plan: FAA code first, then the short code.
func aircraftLabel(fp *vatsim.FlightPlan) string {
	if fp == nil {
		return unknownField
	}
	if fp.AircraftFAA != "" {
		return fp.AircraftFAA
	}
	if fp.AircraftShort != "" {
		return fp.AircraftShort
	}
	return unknownField
}

// View renders the application
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	vd := m.buildViewData()
	if vd.popupOpen && vd.hasSelected {
		return m.renderPopup(vd)
	}

	var sb strings.Builder
	sb.WriteString(m.renderSources())
	sb.WriteString("\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTable(vd))
	sb.WriteString("\n")
	sb.WriteString(m.help.ShortHelpView(m.keys.browseHelp()))
	return sb.String()
}

// renderSources draws the feed info panel above the tables.
func (m *Model) renderSources() string {
	borderStyle := m.theme.BorderStyle()
	titleStyle := m.theme.TitleStyle()
	accentStyle := m.theme.AccentStyle()

	w := m.frameWidth()
	inner := w - 4

	info := fmt.Sprintf("%s  |  updated %s  |  %d clients",
		m.dataURL, m.data.General.UpdateTimestamp, m.data.General.ConnectedClients)
	info = runewidth.Truncate(info, inner, "…")

	var sb strings.Builder
	sb.WriteString(m.boxTop("Data sources", w, borderStyle, titleStyle))
	sb.WriteString("\n")
	sb.WriteString(borderStyle.Render("│ "))
	sb.WriteString(accentStyle.Render(runewidth.FillRight(info, inner)))
	sb.WriteString(borderStyle.Render(" │"))
	sb.WriteString("\n")
	sb.WriteString(borderStyle.Render("╰" + strings.Repeat("─", w-2) + "╯"))
	sb.WriteString("\n")
	return sb.String()
}

// renderTabs draws the tab selector line.
func (m *Model) renderTabs() string {
	dimStyle := m.theme.TextDimStyle()
	activeStyle := m.theme.TabActiveStyle()

	pilots := dimStyle.Render("Pilots")
	controllers := dimStyle.Render("Controllers")
	if m.nav.tab == tabPilots {
		pilots = activeStyle.Render("Pilots")
	} else {
		controllers = activeStyle.Render("Controllers")
	}
	return "   " + pilots + dimStyle.Render("  <->  ") + controllers
}

// renderTable draws the active tab's table, windowed around the
// cursor when the list outgrows the viewport.
func (m *Model) renderTable(vd viewData) string {
	borderStyle := m.theme.BorderStyle()
	titleStyle := m.theme.TitleStyle()
	headerStyle := m.theme.HeaderStyle()
	textStyle := m.theme.TextStyle()
	highlightStyle := m.theme.HighlightStyle()
	dimStyle := m.theme.TextDimStyle()

	w := m.frameWidth()
	inner := w - 4
	colWidth := (inner - 3) / len(vd.headers)

	var sb strings.Builder
	sb.WriteString(m.boxTop(vd.title, w, borderStyle, titleStyle))
	sb.WriteString("\n")

	// header row, aligned with the row prefix
	headerLine := "   " + renderCells(vd.headers, colWidth)
	sb.WriteString(borderStyle.Render("│ "))
	sb.WriteString(headerStyle.Render(runewidth.FillRight(headerLine, inner)))
	sb.WriteString(borderStyle.Render(" │"))
	sb.WriteString("\n")

	if len(vd.rows) == 0 {
		sb.WriteString(borderStyle.Render("│ "))
		sb.WriteString(dimStyle.Render(runewidth.FillRight("   (none online)", inner)))
		sb.WriteString(borderStyle.Render(" │"))
		sb.WriteString("\n")
	}

	start, end := m.visibleWindow(len(vd.rows), vd.highlight)
	for i := start; i < end; i++ {
		line := renderCells(vd.rows[i], colWidth)
		sb.WriteString(borderStyle.Render("│ "))
		if i == vd.highlight {
			sb.WriteString(highlightStyle.Render(runewidth.FillRight(">> "+line, inner)))
		} else {
			sb.WriteString(textStyle.Render(runewidth.FillRight("   "+line, inner)))
		}
		sb.WriteString(borderStyle.Render(" │"))
		sb.WriteString("\n")
	}

	sb.WriteString(borderStyle.Render("╰" + strings.Repeat("─", w-2) + "╯"))
	return sb.String()
}

// visibleWindow returns the half-open row range to draw so the
// highlight stays on screen.
func (m *Model) visibleWindow(total, highlight int) (int, int) {
	maxRows := m.height - 11
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if highlight >= maxRows {
		start = highlight - maxRows + 1
	}
	end := start + maxRows
	if end > total {
		end = total
	}
	return start, end
}

// renderCells lays the cells of one row out in equal fixed-width
// columns.
func renderCells(cells []string, colWidth int) string {
	var sb strings.Builder
	for _, cell := range cells {
		sb.WriteString(runewidth.FillRight(runewidth.Truncate(cell, colWidth-1, "…"), colWidth))
	}
	return sb.String()
}

// renderPopup draws the detail box centered over a cleared frame.
func (m *Model) renderPopup(vd viewData) string {
	box := m.renderDetailBox(vd.selected)
	frame := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
	return frame + "\n" + m.help.ShortHelpView(m.keys.detailHelp())
}

// renderDetailBox draws the label/value panel for the selected entity.
func (m *Model) renderDetailBox(sel selectedRow) string {
	borderStyle := m.theme.BorderStyle()
	titleStyle := m.theme.TitleStyle()
	labelStyle := m.theme.TextDimStyle()
	valueStyle := m.theme.TextStyle()

	boxWidth := 56
	if boxWidth > m.width-4 {
		boxWidth = m.width - 4
	}
	if boxWidth < 30 {
		boxWidth = 30
	}
	inner := boxWidth - 4
	labelWidth := 14

	var sb strings.Builder
	sb.WriteString(m.boxTop(sel.title(), boxWidth, borderStyle, titleStyle))
	sb.WriteString("\n")
	for _, row := range sel.detailRows(m.data) {
		value := row.value
		if value == "" {
			value = "---"
		}
		value = runewidth.Truncate(value, inner-labelWidth, "…")
		sb.WriteString(borderStyle.Render("│ "))
		sb.WriteString(labelStyle.Render(runewidth.FillRight(row.label, labelWidth)))
		sb.WriteString(valueStyle.Render(runewidth.FillRight(value, inner-labelWidth)))
		sb.WriteString(borderStyle.Render(" │"))
		sb.WriteString("\n")
	}
	sb.WriteString(borderStyle.Render("╰" + strings.Repeat("─", boxWidth-2) + "╯"))
	return sb.String()
}

// boxTop draws a titled top border sized to width.
func (m *Model) boxTop(title string, width int, borderStyle, titleStyle lipgloss.Style) string {
	rest := width - runewidth.StringWidth(title) - 5
	if rest < 0 {
		rest = 0
	}
	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat("─", rest)+"╮")
}

// frameWidth is the drawing width for full-width boxes.
func (m *Model) frameWidth() int {
	if m.width < minFrameWidth {
		return minFrameWidth
	}
	return m.width
}
