package main

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/esimov/lowpoly"
	"github.com/esimov/lowpoly/utils"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"gopkg.in/alecthomas/kingpin.v2"
)

const version = "v1.0.0"

var (
	app = kingpin.New("lowpoly", "Convert images to low-poly art using Delaunay triangulation.")

	source       = app.Flag("in", "Source image, directory or URL").Short('i').Required().String()
	destination  = app.Flag("out", "Destination file or directory (.png, .jpg or .svg)").Short('o').Required().String()
	blurSize     = app.Flag("blur", "Gaussian blur kernel size (odd)").Short('b').Default("35").Int()
	detector     = app.Flag("detector", "Edge detection algorithm").Short('e').Default(lowpoly.DetectorSobel).Enum(lowpoly.Detectors...)
	kernelSize   = app.Flag("kernel", "Edge detector kernel size (1 or 3)").Short('k').Default("3").Int()
	threshold    = app.Flag("threshold", "Edge intensity threshold [0, 255]").Short('t').Default("150").Int()
	maxPoints    = app.Flag("max", "Maximum number of points").Short('m').Default("1000").Int()
	grayscale    = app.Flag("gray", "Render in grayscale").Short('g').Bool()
	deleteBorder = app.Flag("delete-border", "Remove the triangles touching the image corners").Short('d').Bool()
	wireframe    = app.Flag("wireframe", "Draw only the triangle edges").Short('w').Bool()
	thickness    = app.Flag("thickness", "Wireframe line width").Default("1").Int()
	noise        = app.Flag("noise", "Noise factor").Short('n').Default("0").Int()
	pointsOut    = app.Flag("points-out", "Save the sampled edge points as a black and white image").String()
	preview      = app.Flag("preview", "Show the result inline (iTerm2 compatible terminals)").Bool()
	verbose      = app.Flag("verbose", "Log every processing stage").Short('v').Bool()
)

// Supported image files.
var extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"}

type job struct {
	in, out string
}

func main() {
	app.Version(version)
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		lowpoly.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
	}

	p := &lowpoly.Processor{
		BlurSize:     *blurSize,
		EdgeDetector: *detector,
		KernelSize:   *kernelSize,
		Threshold:    *threshold,
		MaxPoints:    *maxPoints,
		DeleteBorder: *deleteBorder,
		Grayscale:    *grayscale,
		Wireframe:    *wireframe,
		Thickness:    *thickness,
		Noise:        *noise,
	}
	if err := p.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	jobs, cleanup, err := collectJobs(*source, *destination)
	if err != nil {
		log.Fatalf("%v", err)
	}

	failed := false
	for _, j := range jobs {
		s := utils.NewSpinner()
		s.Start("Generating triangulated image...")
		start := time.Now()
		triangles, points, err := process(p, j)
		s.Stop()

		if err != nil {
			fmt.Fprintf(os.Stderr, "\n%s %s: %v\n", aurora.Red("Error converting image"), j.in, err)
			failed = true
			continue
		}
		fmt.Printf("\nGenerated in: %s\n", aurora.Green(utils.FormatTime(time.Since(start))))
		fmt.Printf("Total number of %d triangles generated out of %d points\n",
			aurora.Green(len(triangles)), aurora.Green(len(points)))
		fmt.Printf("Saved as: %s %s\n\n", filepath.Base(j.out), aurora.Green("✓"))

		if *preview && !strings.EqualFold(filepath.Ext(j.out), ".svg") {
			imgcat.CatFile(j.out, os.Stdout)
		}
	}
	cleanup()

	if failed {
		os.Exit(1)
	}
}

// collectJobs maps every input image to its destination.
// A directory source requires a directory destination.
func collectJobs(src, dst string) ([]job, func(), error) {
	cleanup := func() {}

	if utils.IsValidURL(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return nil, cleanup, err
		}
		f.Close()
		cleanup = func() { os.Remove(f.Name()) }
		return []job{{in: f.Name(), out: dst}}, cleanup, nil
	}

	fs, err := os.Stat(src)
	if err != nil {
		return nil, cleanup, errors.Wrap(err, "unable to open source")
	}
	if fs.Mode().IsRegular() {
		return []job{{in: src, out: dst}}, cleanup, nil
	}

	files, err := os.ReadDir(src)
	if err != nil {
		return nil, cleanup, errors.Wrap(err, "unable to read dir")
	}
	ds, err := os.Stat(dst)
	if err != nil {
		return nil, cleanup, errors.Wrap(err, "unable to get dir stats")
	}
	if !ds.IsDir() {
		return nil, cleanup, errors.New("please specify a directory as destination")
	}

	var jobs []job
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name()))
		if f.IsDir() || !isSupported(ext) {
			continue
		}
		name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		jobs = append(jobs, job{
			in:  filepath.Join(src, f.Name()),
			out: filepath.Join(dst, name+".png"),
		})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].in < jobs[j].in })

	return jobs, cleanup, nil
}

func isSupported(ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// process triangulates a single image. The destination is written only
// once the whole pipeline succeeded.
func process(p *lowpoly.Processor, j job) ([]lowpoly.Triangle, []lowpoly.Point, error) {
	file, err := os.Open(j.in)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to open source file")
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, nil, errors.Wrap(err, "image decoding")
	}

	img, triangles, points, err := p.Process(src)
	if err != nil {
		return nil, nil, err
	}

	if err := writeOutputs(j.out, *pointsOut, p, img, triangles, points, src); err != nil {
		return nil, nil, err
	}
	return triangles, points, nil
}

// writeOutputs encodes the result into dst and, when maskPath is set, the sampled points mask.
// The mask is written only after dst was encoded successfully.
func writeOutputs(
	dst, maskPath string,
	p *lowpoly.Processor,
	img image.Image,
	triangles []lowpoly.Triangle,
	points []lowpoly.Point,
	src image.Image,
) error {
	var err error
	if strings.EqualFold(filepath.Ext(dst), ".svg") {
		err = writeSVG(dst, p, triangles, src)
	} else {
		err = writeImage(dst, img)
	}
	if err != nil {
		return errors.Wrap(err, "image encoding")
	}

	if maskPath != "" {
		b := src.Bounds()
		mask := lowpoly.EdgePointsMask(points, b.Dx(), b.Dy())
		if err := writeImage(maskPath, mask); err != nil {
			return errors.Wrap(err, "edge points output")
		}
	}
	return nil
}

func writeImage(path string, img image.Image) error {
	fq, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fq.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(fq, img, &jpeg.Options{Quality: 100})
	default:
		return png.Encode(fq, img)
	}
}

func writeSVG(path string, p *lowpoly.Processor, triangles []lowpoly.Triangle, src image.Image) error {
	fq, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fq.Close()

	svg := &lowpoly.SVG{
		Title:     "Delaunay image triangulator",
		Mode:      p.ColorMode(),
		Style:     p.Style(),
		Thickness: p.Thickness,
	}
	return svg.Draw(fq, triangles, src)
}
