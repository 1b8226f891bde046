package lowpoly

import (
	"image"
	"log/slog"

	"github.com/pkg/errors"
)

// Processor : type with processing options.
//
// BlurSize is the (odd) Gaussian kernel size, KernelSize the edge detector kernel size (1 or 3).
// Threshold filters the edge intensities and MaxPoints bounds the number of sampled points.
// Thickness is the wireframe line width and Noise the strength of the grain applied over the result.
type Processor struct {
	BlurSize     int
	EdgeDetector string
	KernelSize   int
	Threshold    int
	MaxPoints    int
	DeleteBorder bool
	Grayscale    bool
	Wireframe    bool
	Thickness    int
	Noise        int
}

// NewProcessor returns a processor initialized with the default options.
func NewProcessor() *Processor {
	return &Processor{
		BlurSize:     35,
		EdgeDetector: DetectorSobel,
		KernelSize:   3,
		Threshold:    150,
		MaxPoints:    1000,
		Thickness:    1,
	}
}

// Validate checks every option against its accepted range.
func (p *Processor) Validate() error {
	switch {
	case p.BlurSize < 1 || p.BlurSize%2 == 0:
		return &ConfigError{Field: "blur", Value: p.BlurSize, Reason: "must be a positive odd number"}
	case p.EdgeDetector != DetectorSobel && p.EdgeDetector != DetectorLaplacian:
		return &ConfigError{Field: "detector", Value: p.EdgeDetector, Reason: "unknown edge detection algorithm"}
	case p.KernelSize != 1 && p.KernelSize != 3:
		return &ConfigError{Field: "kernel", Value: p.KernelSize, Reason: "must be 1 or 3"}
	case p.Threshold < 0 || p.Threshold > 255:
		return &ConfigError{Field: "threshold", Value: p.Threshold, Reason: "must be in the [0, 255] range"}
	case p.MaxPoints <= 0:
		return &ConfigError{Field: "max", Value: p.MaxPoints, Reason: "must be greater than 0"}
	case p.Thickness < 1:
		return &ConfigError{Field: "thickness", Value: p.Thickness, Reason: "must be at least 1"}
	case p.Noise < 0:
		return &ConfigError{Field: "noise", Value: p.Noise, Reason: "must not be negative"}
	}
	return nil
}

// ColorMode returns the color mode selected by the options.
func (p *Processor) ColorMode() ColorMode {
	if p.Grayscale {
		return ModeGrayscale
	}
	return ModeColor
}

// Style returns the render style selected by the options.
func (p *Processor) Style() Style {
	if p.Wireframe {
		return StyleWireframe
	}
	return StyleFill
}

// Process triangulates the source image. It returns the rendered image together with
// the generated triangles and the sampled edge points.
// Every error is reported before anything is drawn and names the failing stage.
func (p *Processor) Process(src image.Image) (image.Image, []Triangle, []Point, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, nil, err
	}
	renderer, err := NewRenderer(p.ColorMode(), p.Style(), p.Thickness)
	if err != nil {
		return nil, nil, nil, err
	}
	log := Logger()
	width, height := src.Bounds().Dx(), src.Bounds().Dy()

	edges, err := EdgeMap(src, p.BlurSize, p.EdgeDetector, p.KernelSize)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "edge detection")
	}
	log.Info("edge detection finished", slog.String("detector", p.EdgeDetector))

	points := GetEdgePoints(edges, p.Threshold, p.MaxPoints)
	log.Info("edge points sampled", slog.Int("points", len(points)))

	triangles, err := Triangulate(points, width, height, p.DeleteBorder)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "triangulation")
	}
	log.Info("mesh created", slog.Int("triangles", len(triangles)))

	dst := renderer.Render(triangles, src)
	if p.Noise > 0 {
		noisy := Noise(p.Noise, dst)
		if p.Grayscale {
			dst = Grayscale(noisy)
		} else {
			dst = noisy
		}
	}
	log.Info("image rendered",
		slog.String("mode", p.ColorMode().String()),
		slog.String("style", p.Style().String()),
	)

	return dst, triangles, points, nil
}
