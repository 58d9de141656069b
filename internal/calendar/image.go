package calendar

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

// Canvas layout
const (
	imageWidth    = 1400
	headerHeight  = 70
	weekdayRowH   = 34
	cellHeight    = 150
	cellPadding   = 6
	chipHeight    = 18.0
	chipRadius    = 4.0
	chipGap       = 3.0
	maxChipsPerDay = 6
)

// Color scheme
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	gridLineColor  = color.NRGBA{200, 203, 207, 255}
	headerColor    = color.RGBA{60, 64, 70, 255}
	weekdayColor   = color.RGBA{110, 115, 120, 220}
	dayNumberColor = color.RGBA{80, 85, 90, 230}
	pastDayColor   = color.NRGBA{228, 229, 232, 255}
	todayBgColor   = color.NRGBA{255, 99, 71, 60}
	blankCellColor = color.NRGBA{238, 239, 242, 255}
	chipTextColor  = color.RGBA{255, 255, 255, 255}
	moreTextColor  = color.RGBA{120, 124, 130, 255}
)

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderMonthImage draws a month grid with the aggregated slots of each day
// as colored tutor chips and returns the encoded PNG.
func RenderMonthImage(grid Grid, index model.MonthIndex) ([]byte, error) {
	rows := (grid.LeadingBlanks + len(grid.Days) + Columns - 1) / Columns
	imageHeight := headerHeight + weekdayRowH + rows*cellHeight

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	drawMonthHeader(dc, grid)
	drawWeekdayRow(dc)

	cellWidth := float64(imageWidth) / Columns
	for i, day := range grid.Days {
		cell := grid.LeadingBlanks + i
		x := float64(cell%Columns) * cellWidth
		y := float64(headerHeight+weekdayRowH) + float64(cell/Columns)*cellHeight
		drawDayCell(dc, day, index[day.Key()], x, y, cellWidth)
	}

	// Empty cells before the first day and after the last one.
	for cell := 0; cell < grid.LeadingBlanks; cell++ {
		fillCell(dc, cell, cellWidth, blankCellColor)
	}
	for cell := grid.LeadingBlanks + len(grid.Days); cell < rows*Columns; cell++ {
		fillCell(dc, cell, cellWidth, blankCellColor)
	}

	drawGridLines(dc, rows, cellWidth)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode month image: %w", err)
	}
	return buf.Bytes(), nil
}

func drawMonthHeader(dc *gg.Context, grid Grid) {
	title := fmt.Sprintf("%s %d", time.Month(grid.Month).String(), grid.Year)
	dc.SetColor(headerColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/2, 0.5, 0.5)
}

func drawWeekdayRow(dc *gg.Context) {
	cellWidth := float64(imageWidth) / Columns
	dc.SetColor(weekdayColor)
	for i, label := range weekdayLabels {
		x := float64(i)*cellWidth + cellWidth/2
		y := float64(headerHeight) + float64(weekdayRowH)/2
		dc.DrawStringAnchored(label, x, y, 0.5, 0.5)
	}
}

func fillCell(dc *gg.Context, cell int, cellWidth float64, clr color.Color) {
	x := float64(cell%Columns) * cellWidth
	y := float64(headerHeight+weekdayRowH) + float64(cell/Columns)*cellHeight
	dc.SetColor(clr)
	dc.DrawRectangle(x, y, cellWidth, cellHeight)
	dc.Fill()
}

func drawDayCell(dc *gg.Context, day Day, slots []model.TutorSlot, x, y, cellWidth float64) {
	if day.IsPast {
		dc.SetColor(pastDayColor)
		dc.DrawRectangle(x, y, cellWidth, cellHeight)
		dc.Fill()
	}
	if day.IsToday {
		dc.SetColor(todayBgColor)
		dc.DrawRectangle(x, y, cellWidth, cellHeight)
		dc.Fill()
	}

	dc.SetColor(dayNumberColor)
	dc.DrawStringAnchored(fmt.Sprintf("%d", day.Date.Day()), x+cellPadding, y+cellPadding+8, 0, 0.5)

	chipY := y + cellPadding + 18
	for i, slot := range slots {
		if i == maxChipsPerDay {
			dc.SetColor(moreTextColor)
			dc.DrawStringAnchored(fmt.Sprintf("+%d more", len(slots)-maxChipsPerDay), x+cellPadding, chipY+chipHeight/2, 0, 0.5)
			break
		}
		drawSlotChip(dc, slot, x+cellPadding, chipY, cellWidth-2*cellPadding)
		chipY += chipHeight + chipGap
	}
}

func drawSlotChip(dc *gg.Context, slot model.TutorSlot, x, y, width float64) {
	dc.SetHexColor(slot.TutorColor)
	dc.DrawRoundedRectangle(x, y, width, chipHeight, chipRadius)
	dc.Fill()

	label := fmt.Sprintf("%s %s-%s", slot.TutorName, slot.StartTime, slot.EndTime)
	dc.SetColor(chipTextColor)
	dc.DrawStringAnchored(truncate(label, int(width/7)), x+4, y+chipHeight/2, 0, 0.5)
}

func drawGridLines(dc *gg.Context, rows int, cellWidth float64) {
	dc.SetColor(gridLineColor)
	dc.SetLineWidth(1)

	top := float64(headerHeight + weekdayRowH)
	bottom := top + float64(rows*cellHeight)
	for i := 0; i <= Columns; i++ {
		x := float64(i) * cellWidth
		dc.DrawLine(x, top, x, bottom)
	}
	for i := 0; i <= rows; i++ {
		y := top + float64(i*cellHeight)
		dc.DrawLine(0, y, float64(imageWidth), y)
	}
	dc.Stroke()
}

// truncate trims a chip label to what fits the chip width.
func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
