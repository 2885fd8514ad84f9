package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/acibeam/internal/report"
)

// ErrNotDrawable is returned when the strain profile cannot be drawn
// because c or εt is outside the section or non-finite.
var ErrNotDrawable = errors.New("strain distribution not drawable")

var (
	stressBlockFill = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	stressBlockLine = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	neutralAxisLine = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	rebarColor      = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	strainColor     = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	yieldColor      = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)

// SectionPlot builds the cross-section plot: outline, stress block,
// neutral axis and bars. Elements whose depth is non-finite or outside
// the section are skipped.
func SectionPlot(data SectionDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Beam Section Analysis"
	p.X.Label.Text = "Width (in)"
	p.Y.Label.Text = "Height (in)"

	// Rectangular outline
	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Width, Y: 0},
		{X: data.Width, Y: data.Height},
		{X: 0, Y: data.Height},
		{X: 0, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)

	var labels plotter.XYLabels
	margin := 0.1 * data.Width

	if data.HasStressBlock() {
		top := data.Height
		bottom := data.Height - data.StressBlockDepth
		block, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: top},
			{X: data.Width, Y: top},
			{X: data.Width, Y: bottom},
			{X: 0, Y: bottom},
		})
		if err != nil {
			return nil, err
		}
		block.Color = stressBlockFill
		block.LineStyle.Color = stressBlockLine
		p.Add(block)

		labels.XYs = append(labels.XYs, plotter.XY{X: data.Width + margin, Y: top - data.StressBlockDepth/2})
		labels.Labels = append(labels.Labels, fmt.Sprintf("a=%s in", report.Num(data.StressBlockDepth, 2)))
	}

	if data.HasNeutralAxis() {
		naY := data.Height - data.NeutralAxisDepth
		na, err := plotter.NewLine(plotter.XYs{
			{X: -margin, Y: naY},
			{X: data.Width + margin, Y: naY},
		})
		if err != nil {
			return nil, err
		}
		na.LineStyle.Width = vg.Points(1.5)
		na.LineStyle.Color = neutralAxisLine
		na.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(na)

		labels.XYs = append(labels.XYs, plotter.XY{X: data.Width + margin, Y: naY})
		labels.Labels = append(labels.Labels, "N.A.")
	}

	// Tension steel
	center := data.Width / 2
	tensionY := data.Height - data.TensionSteelDepth
	tension, err := plotter.NewScatter(plotter.XYs{
		{X: center - data.Width*0.3, Y: tensionY},
		{X: center, Y: tensionY},
		{X: center + data.Width*0.3, Y: tensionY},
	})
	if err != nil {
		return nil, err
	}
	tension.GlyphStyle.Color = rebarColor
	tension.GlyphStyle.Radius = vg.Points(6)
	tension.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(tension)

	labels.XYs = append(labels.XYs, plotter.XY{X: center - data.Width*0.2, Y: tensionY - 0.08*data.Height})
	labels.Labels = append(labels.Labels, fmt.Sprintf("As=%s in²", report.Num(data.TensionSteelArea, 2)))

	if data.HasCompSteel() {
		compY := data.Height - data.CompSteelDepth
		comp, err := plotter.NewScatter(plotter.XYs{
			{X: center - data.Width*0.3, Y: compY},
			{X: center + data.Width*0.3, Y: compY},
		})
		if err != nil {
			return nil, err
		}
		comp.GlyphStyle.Color = rebarColor
		comp.GlyphStyle.Radius = vg.Points(5)
		comp.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(comp)
	}

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(l)

	p.X.Min = -2 * margin
	p.X.Max = data.Width + 4*margin
	p.Y.Min = -0.1 * data.Height
	p.Y.Max = 1.05 * data.Height

	return p, nil
}

// StrainPlot builds the strain distribution over the depth.
func StrainPlot(data SectionDiagramData) (*plot.Plot, error) {
	if !data.HasNeutralAxis() || !data.HasTensionStrain() {
		return nil, ErrNotDrawable
	}

	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Height (in)"

	steelY := data.Height - data.TensionSteelDepth
	points := plotter.XYs{
		{X: data.EpsilonCU, Y: data.Height},            // top fiber, compression
		{X: 0, Y: data.Height - data.NeutralAxisDepth}, // neutral axis
		{X: -data.EpsilonT, Y: steelY},                 // tension steel
	}

	strain, err := plotter.NewLine(points)
	if err != nil {
		return nil, err
	}
	strain.LineStyle.Width = vg.Points(2)
	strain.LineStyle.Color = strainColor
	p.Add(strain)

	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 0, Y: data.Height}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	// Yield strain references on both sides
	for _, x := range []float64{data.EpsilonY, -data.EpsilonY} {
		yield, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: data.Height}})
		if err != nil {
			return nil, err
		}
		yield.LineStyle.Color = yieldColor
		yield.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(yield)
	}

	keys, err := plotter.NewScatter(points)
	if err != nil {
		return nil, err
	}
	keys.GlyphStyle.Color = neutralAxisLine
	keys.GlyphStyle.Radius = vg.Points(4)
	p.Add(keys)

	return p, nil
}

// formatFor maps a file name to a plot format, defaulting to png.
func formatFor(filename string) (string, string) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "png", "svg", "pdf":
		return filename, ext
	default:
		return filename + ".png", "png"
	}
}

func save(p *plot.Plot, w, h vg.Length, filename string) (string, error) {
	filename, _ = formatFor(filename)

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := p.Save(w, h, filename); err != nil {
		return "", fmt.Errorf("saving %s: %w", filename, err)
	}
	return filename, nil
}

// ExportSectionDiagram exports a beam section diagram to an image file
// (png, svg or pdf by extension) and returns the path written.
func ExportSectionDiagram(data SectionDiagramData, filename string) (string, error) {
	p, err := SectionPlot(data)
	if err != nil {
		return "", err
	}
	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportStrainDiagram exports a strain distribution diagram
func ExportStrainDiagram(data SectionDiagramData, filename string) (string, error) {
	p, err := StrainPlot(data)
	if err != nil {
		return "", err
	}
	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// WriteSectionSVG renders the section diagram as SVG to w.
func WriteSectionSVG(w io.Writer, data SectionDiagramData) error {
	p, err := SectionPlot(data)
	if err != nil {
		return err
	}
	return writeSVG(w, p, 8*vg.Inch, 6*vg.Inch)
}

// WriteStrainSVG renders the strain distribution as SVG to w. It returns
// ErrNotDrawable before writing anything when the profile has no finite
// neutral axis or steel strain.
func WriteStrainSVG(w io.Writer, data SectionDiagramData) error {
	p, err := StrainPlot(data)
	if err != nil {
		return err
	}
	return writeSVG(w, p, 6*vg.Inch, 8*vg.Inch)
}

func writeSVG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "svg")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
