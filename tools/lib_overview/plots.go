package lib_overview

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"peplib_go/alphabet"
)

type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// GenerateLengthPlotSVG renders the sequence length distribution with a
// fitted normal curve overlaid.
func GenerateLengthPlotSVG(lengths []float64) (string, error) {
	p := plot.New()
	p.Title.Text = "Peptide Length Distribution"
	p.X.Label.Text = "Sequence Length"
	p.Y.Label.Text = "Sequence Count"
	p.X.Tick.Marker = IntegerTicks{}

	minLen := int(lengths[0])
	maxLen := int(lengths[0])
	for _, l := range lengths {
		if int(l) < minLen {
			minLen = int(l)
		}
		if int(l) > maxLen {
			maxLen = int(l)
		}
	}

	// One bin per integer length
	binCount := maxLen - minLen + 1
	counts := make([]float64, binCount)
	for _, val := range lengths {
		counts[int(val)-minLen]++
	}

	observed := make(plotter.XYs, binCount)
	for i := 0; i < binCount; i++ {
		observed[i].X = float64(minLen + i)
		observed[i].Y = counts[i]
	}

	obsLine, err := plotter.NewLine(observed)
	if err != nil {
		return "", err
	}
	obsLine.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	obsLine.LineStyle.Width = vg.Points(2)
	p.Add(obsLine)
	p.Legend.Add("Observed", obsLine)

	mean := stat.Mean(lengths, nil)
	stddev := stat.StdDev(lengths, nil)
	if stddev > 0 {
		normDist := distuv.Normal{Mu: mean, Sigma: stddev}
		expected := make(plotter.XYs, binCount)
		for i := 0; i < binCount; i++ {
			x := float64(minLen + i)
			expected[i].X = x
			expected[i].Y = normDist.Prob(x) * float64(len(lengths))
		}
		expLine, err := plotter.NewLine(expected)
		if err != nil {
			return "", err
		}
		expLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
		expLine.Width = vg.Points(2)
		expLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(expLine)
		p.Legend.Add("Modelled Normal", expLine)
	}
	p.Legend.Top = true

	return renderSVG(p)
}

// GenerateCompositionPlotSVG renders the observed residue frequencies next
// to the APD3-derived reference distribution. The X axis indexes residues
// in canonical alphabet order.
func GenerateCompositionPlotSVG(seqs []string) (string, error) {
	p := plot.New()
	p.Title.Text = "Residue Composition"
	p.X.Label.Text = "Residue (index into " + alphabet.Natural + ")"
	p.Y.Label.Text = "Frequency"
	p.X.Tick.Marker = IntegerTicks{}

	counts := make([]float64, len(alphabet.Natural))
	total := 0.0
	for _, s := range seqs {
		for i := 0; i < len(s); i++ {
			for a := 0; a < len(alphabet.Natural); a++ {
				if s[i] == alphabet.Natural[a] {
					counts[a]++
					total++
					break
				}
			}
		}
	}

	observed := make(plotter.XYs, len(counts))
	reference := make(plotter.XYs, len(counts))
	for i := range counts {
		observed[i].X = float64(i)
		if total > 0 {
			observed[i].Y = counts[i] / total
		}
		reference[i].X = float64(i)
		reference[i].Y = alphabet.AMP.Weights[i]
	}

	obsLine, err := plotter.NewLine(observed)
	if err != nil {
		return "", err
	}
	obsLine.Color = color.RGBA{B: 255, A: 255}
	obsLine.Width = vg.Points(2)

	refLine, err := plotter.NewLine(reference)
	if err != nil {
		return "", err
	}
	refLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	refLine.Width = vg.Points(2)
	refLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(obsLine, refLine)
	p.Legend.Add("Observed", obsLine)
	p.Legend.Add("APD3 Reference", refLine)
	p.Legend.Top = true

	return renderSVG(p)
}

func renderSVG(p *plot.Plot) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
